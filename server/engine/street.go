package engine

// Street is one of the three public betting rounds, or the rejection tag
// for a malformed submission. StreetInvalid is never persisted.
type Street string

const (
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
	StreetInvalid Street = "bad_game_state"
)

// streetSequence is the only legal record order within a hand.
var streetSequence = []Street{StreetFlop, StreetTurn, StreetRiver}

// CommunityCards is one submission's view of the board: the flop is always
// present, turn and river only once those streets have been dealt.
type CommunityCards struct {
	Flop  [3]Card
	Turn  *Card
	River *Card
}

// Street classifies the submission. A river card without a turn card is an
// out-of-order reveal and classifies as StreetInvalid.
func (cc CommunityCards) Street() Street {
	switch {
	case cc.Turn == nil && cc.River == nil:
		return StreetFlop
	case cc.Turn != nil && cc.River == nil:
		return StreetTurn
	case cc.Turn != nil && cc.River != nil:
		return StreetRiver
	default:
		return StreetInvalid
	}
}

// Validate checks every supplied card against the closed rank/suit sets.
func (cc CommunityCards) Validate() error {
	for i, c := range cc.Flop {
		if !c.Valid() {
			return E(KindInvalidCardEncoding, "flop card %d is not a valid card: %q", i, c.Token())
		}
	}
	if cc.Turn != nil && !cc.Turn.Valid() {
		return E(KindInvalidCardEncoding, "turn card is not a valid card: %q", cc.Turn.Token())
	}
	if cc.River != nil && !cc.River.Valid() {
		return E(KindInvalidCardEncoding, "river card is not a valid card: %q", cc.River.Token())
	}
	return nil
}
