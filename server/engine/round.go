package engine

// RoundRecord is one street's reveal for a hand. Appended exactly once per
// (game date, hand number, street) and never mutated afterwards. The street
// tag is stored explicitly rather than inferred from insertion position.
type RoundRecord struct {
	GameDate      string
	HandNumber    int
	Street        Street
	Flop          [3]Card
	Turn          *Card
	River         *Card
	ActivePlayers []string
}

// NewRoundRecord builds the record for a classified submission.
func NewRoundRecord(gameDate string, handNumber int, cc CommunityCards, players []string) RoundRecord {
	return RoundRecord{
		GameDate:      gameDate,
		HandNumber:    handNumber,
		Street:        cc.Street(),
		Flop:          cc.Flop,
		Turn:          cloneCard(cc.Turn),
		River:         cloneCard(cc.River),
		ActivePlayers: append([]string(nil), players...),
	}
}

// Clone deep-copies a record so the store keeps exclusive ownership of what
// it holds and callers cannot mutate persisted state through aliases.
func (r RoundRecord) Clone() RoundRecord {
	out := r
	out.Turn = cloneCard(r.Turn)
	out.River = cloneCard(r.River)
	out.ActivePlayers = append([]string(nil), r.ActivePlayers...)
	return out
}

func cloneCard(c *Card) *Card {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
