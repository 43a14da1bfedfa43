package etl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allin-analytics/server/engine"
	"allin-analytics/server/store"
)

type fakeSink struct {
	existingUUID string
	rows         []store.PlayerHand
}

func (f *fakeSink) GameUUIDForDate(_ context.Context, _ string) (string, error) {
	return f.existingUUID, nil
}

func (f *fakeSink) InsertPlayerHand(_ context.Context, h store.PlayerHand) error {
	f.rows = append(f.rows, h)
	return nil
}

func writeCSV(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestImportNumbersHandsPerPlayer(t *testing.T) {
	adam := writeCSV(t, "adam.csv",
		"session,hole_card_1,hole_card_2\n"+
			"1,AS,KH\n"+
			"1,2D,2C\n"+
			"1,,\n"+ // incomplete row is skipped, not numbered
			"1,9C,TD\n")
	gil := writeCSV(t, "gil.csv",
		"session,hole_card_1,hole_card_2\n"+
			"1,QH,JS\n")

	sink := &fakeSink{}
	n, err := ImportPlayerCSVs(context.Background(), sink, "01-10-2023", []string{adam, gil}, []string{"adam", "gil"})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, sink.rows, 4)

	assert.Equal(t, "adam", sink.rows[0].PlayerID)
	assert.Equal(t, 1, sink.rows[0].HandNumber)
	assert.Equal(t, 2, sink.rows[1].HandNumber)
	assert.Equal(t, 3, sink.rows[2].HandNumber)
	require.NotNil(t, sink.rows[2].HoleCard2)
	assert.Equal(t, "TD", *sink.rows[2].HoleCard2)

	assert.Equal(t, "gil", sink.rows[3].PlayerID)
	assert.Equal(t, 1, sink.rows[3].HandNumber)

	// Every row carries the same freshly minted game UUID.
	minted := sink.rows[0].GameUUID
	assert.NotEmpty(t, minted)
	for _, row := range sink.rows {
		assert.Equal(t, minted, row.GameUUID)
		assert.Equal(t, "01-10-2023", row.GameDate)
	}
}

func TestImportReusesExistingGameUUID(t *testing.T) {
	path := writeCSV(t, "adam.csv", "hole_card_1,hole_card_2\nAS,KH\n")
	sink := &fakeSink{existingUUID: "existing-game"}

	_, err := ImportPlayerCSVs(context.Background(), sink, "01-10-2023", []string{path}, []string{"adam"})
	require.NoError(t, err)
	require.Len(t, sink.rows, 1)
	assert.Equal(t, "existing-game", sink.rows[0].GameUUID)
}

func TestImportWithoutHoleCardColumns(t *testing.T) {
	path := writeCSV(t, "adam.csv", "session,net\n1,20\n1,-5\n")
	sink := &fakeSink{}

	n, err := ImportPlayerCSVs(context.Background(), sink, "01-10-2023", []string{path}, []string{"adam"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Nil(t, sink.rows[0].HoleCard1)
	assert.Nil(t, sink.rows[0].HoleCard2)
}

func TestImportRejectsMalformedHoleCard(t *testing.T) {
	path := writeCSV(t, "adam.csv", "hole_card_1,hole_card_2\n10S,KH\n")
	sink := &fakeSink{}

	_, err := ImportPlayerCSVs(context.Background(), sink, "01-10-2023", []string{path}, []string{"adam"})
	require.Error(t, err)
	assert.Equal(t, engine.KindInvalidCardEncoding, engine.KindOf(err))
}

func TestImportValidatesArguments(t *testing.T) {
	sink := &fakeSink{}
	ctx := context.Background()

	_, err := ImportPlayerCSVs(ctx, sink, "01-10-2023", []string{"a.csv"}, []string{"adam", "gil"})
	require.Error(t, err)

	_, err = ImportPlayerCSVs(ctx, sink, "13-45-2023", []string{"a.csv"}, []string{"adam"})
	require.Error(t, err)
	assert.Equal(t, engine.KindInvalidGameDate, engine.KindOf(err))
}
