package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flopRecord(players ...string) RoundRecord {
	return NewRoundRecord("01-10-2023", 1, CommunityCards{Flop: testFlop()}, players)
}

func turnRecord(players ...string) RoundRecord {
	turn := Card{Rank: Four, Suit: Diamonds}
	return NewRoundRecord("01-10-2023", 1, CommunityCards{Flop: testFlop(), Turn: &turn}, players)
}

func riverRecord(players ...string) RoundRecord {
	turn := Card{Rank: Four, Suit: Diamonds}
	river := Card{Rank: Nine, Suit: Clubs}
	return NewRoundRecord("01-10-2023", 1, CommunityCards{Flop: testFlop(), Turn: &turn, River: &river}, players)
}

func TestReconstructFullHand(t *testing.T) {
	records := []RoundRecord{
		flopRecord("Gil", "Adam", "Zain", "Matt"),
		turnRecord("Gil", "Adam", "Zain"),
		riverRecord("Gil", "Adam"),
	}

	views, err := Reconstruct(records)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, StreetFlop, views[0].Street)
	assert.Equal(t, StreetTurn, views[1].Street)
	assert.Equal(t, StreetRiver, views[2].Street)

	assert.Equal(t, []string{"Gil", "Adam", "Zain", "Matt"}, views[0].ActivePlayers)
	assert.Equal(t, []string{"Gil", "Adam", "Zain"}, views[1].ActivePlayers)
	assert.Equal(t, []string{"Gil", "Adam"}, views[2].ActivePlayers)

	require.NotNil(t, views[1].Turn)
	assert.Equal(t, "4D", views[1].Turn.Token())
	require.NotNil(t, views[2].River)
	assert.Equal(t, "9C", views[2].River.Token())

	byStreet := PlayersByStreet(views)
	require.Len(t, byStreet, 3)
	assert.Equal(t, []string{"Gil", "Adam", "Zain"}, byStreet[StreetTurn])
}

func TestReconstructPartialHand(t *testing.T) {
	views, err := Reconstruct([]RoundRecord{flopRecord("Gil", "Adam")})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, StreetFlop, views[0].Street)
	assert.Nil(t, views[0].Turn)
	assert.Nil(t, views[0].River)

	byStreet := PlayersByStreet(views)
	require.Len(t, byStreet, 1)
	_, hasTurn := byStreet[StreetTurn]
	assert.False(t, hasTurn)
}

func TestReconstructEmptyHand(t *testing.T) {
	views, err := Reconstruct(nil)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestReconstructGapFails(t *testing.T) {
	// A turn record with no flop record means a prior write went wrong.
	_, err := Reconstruct([]RoundRecord{turnRecord("Gil")})
	require.Error(t, err)
	assert.Equal(t, KindBrokenStreetSequence, KindOf(err))
}

func TestReconstructOutOfOrderFails(t *testing.T) {
	_, err := Reconstruct([]RoundRecord{flopRecord("Gil"), riverRecord("Gil")})
	require.Error(t, err)
	assert.Equal(t, KindBrokenStreetSequence, KindOf(err))
}

func TestReconstructTooManyRecordsFails(t *testing.T) {
	records := []RoundRecord{flopRecord("Gil"), turnRecord("Gil"), riverRecord("Gil"), riverRecord("Gil")}
	_, err := Reconstruct(records)
	require.Error(t, err)
	assert.Equal(t, KindBrokenStreetSequence, KindOf(err))
}

func TestReconstructCopiesPlayerLists(t *testing.T) {
	records := []RoundRecord{flopRecord("Gil", "Adam")}
	views, err := Reconstruct(records)
	require.NoError(t, err)

	views[0].ActivePlayers[0] = "mutated"
	assert.Equal(t, "Gil", records[0].ActivePlayers[0])
}
