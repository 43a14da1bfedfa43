package engine

// StreetView is one street's slice of a hand's cumulative history. Each
// street keeps its own player list; later streets are not derived from
// earlier ones.
type StreetView struct {
	Street        Street
	Flop          [3]Card
	Turn          *Card
	River         *Card
	ActivePlayers []string
}

// Reconstruct rebuilds the per-street views of a hand from its ordered
// record log. The street tags must form a prefix of flop, turn, river in
// that order; a gap, repeat, or out-of-order tag means a prior write went
// wrong and reconstruction refuses to fabricate state.
func Reconstruct(records []RoundRecord) ([]StreetView, error) {
	if len(records) > len(streetSequence) {
		return nil, E(KindBrokenStreetSequence,
			"hand has %d street records, more than the %d streets that exist", len(records), len(streetSequence))
	}
	views := make([]StreetView, 0, len(records))
	for i, rec := range records {
		if rec.Street != streetSequence[i] {
			return nil, E(KindBrokenStreetSequence,
				"record %d is tagged %q, expected %q", i, rec.Street, streetSequence[i])
		}
		views = append(views, StreetView{
			Street:        rec.Street,
			Flop:          rec.Flop,
			Turn:          cloneCard(rec.Turn),
			River:         cloneCard(rec.River),
			ActivePlayers: append([]string(nil), rec.ActivePlayers...),
		})
	}
	return views, nil
}

// PlayersByStreet indexes the reconstructed views into a street-to-roster
// map, one entry per street actually played.
func PlayersByStreet(views []StreetView) map[Street][]string {
	out := make(map[Street][]string, len(views))
	for _, v := range views {
		out[v.Street] = v.ActivePlayers
	}
	return out
}
