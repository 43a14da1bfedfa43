package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlop() [3]Card {
	return [3]Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Hearts},
		{Rank: Two, Suit: Diamonds},
	}
}

func TestClassifyStreet(t *testing.T) {
	turn := Card{Rank: Four, Suit: Diamonds}
	river := Card{Rank: Nine, Suit: Clubs}

	flopOnly := CommunityCards{Flop: testFlop()}
	assert.Equal(t, StreetFlop, flopOnly.Street())

	withTurn := CommunityCards{Flop: testFlop(), Turn: &turn}
	assert.Equal(t, StreetTurn, withTurn.Street())

	full := CommunityCards{Flop: testFlop(), Turn: &turn, River: &river}
	assert.Equal(t, StreetRiver, full.Street())

	riverNoTurn := CommunityCards{Flop: testFlop(), River: &river}
	assert.Equal(t, StreetInvalid, riverNoTurn.Street())
}

func TestCommunityCardsValidate(t *testing.T) {
	turn := Card{Rank: Four, Suit: Diamonds}
	cc := CommunityCards{Flop: testFlop(), Turn: &turn}
	assert.NoError(t, cc.Validate())

	badFlop := cc
	badFlop.Flop[1] = Card{Rank: "Z", Suit: Spades}
	err := badFlop.Validate()
	require.Error(t, err)
	assert.Equal(t, KindInvalidCardEncoding, KindOf(err))

	badTurn := Card{Rank: Four, Suit: "X"}
	err = CommunityCards{Flop: testFlop(), Turn: &badTurn}.Validate()
	require.Error(t, err)
	assert.Equal(t, KindInvalidCardEncoding, KindOf(err))
}
