// Package etl imports hand-history CSV exports, one file per player, into
// the player_hands table.
package etl

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"allin-analytics/server/engine"
	"allin-analytics/server/store"
)

// Sink is the slice of the store the importer writes through.
type Sink interface {
	GameUUIDForDate(ctx context.Context, gameDate string) (string, error)
	InsertPlayerHand(ctx context.Context, h store.PlayerHand) error
}

// ImportPlayerCSVs loads one CSV file per player id. Rows become hands
// numbered sequentially from 1 within each file; rows with any blank field
// are skipped. If a game already exists for the date its UUID is reused,
// otherwise a fresh one is minted. Returns the number of hands imported.
func ImportPlayerCSVs(ctx context.Context, sink Sink, gameDate string, csvPaths, playerIDs []string) (int, error) {
	if len(csvPaths) != len(playerIDs) {
		return 0, fmt.Errorf("got %d csv files but %d player ids", len(csvPaths), len(playerIDs))
	}
	if _, err := engine.ValidateGameDate(gameDate); err != nil {
		return 0, err
	}
	gameUUID, err := sink.GameUUIDForDate(ctx, gameDate)
	if err != nil {
		return 0, err
	}
	if gameUUID == "" {
		gameUUID = uuid.NewString()
	}

	total := 0
	for i, path := range csvPaths {
		n, err := importFile(ctx, sink, gameUUID, gameDate, strings.TrimSpace(playerIDs[i]), path)
		total += n
		if err != nil {
			return total, fmt.Errorf("import %s: %w", path, err)
		}
	}
	return total, nil
}

func importFile(ctx context.Context, sink Sink, gameUUID, gameDate, playerID, path string) (int, error) {
	if playerID == "" {
		return 0, errors.New("player id must not be blank")
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	// Hole-card columns are optional in the exports.
	col1, col2 := -1, -1
	for idx, name := range header {
		switch strings.TrimSpace(name) {
		case "hole_card_1":
			col1 = idx
		case "hole_card_2":
			col2 = idx
		}
	}

	count := 0
	handNumber := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}
		if incomplete(row) {
			continue
		}
		handNumber++
		h := store.PlayerHand{
			GameUUID:   gameUUID,
			GameDate:   gameDate,
			PlayerID:   playerID,
			HandNumber: handNumber,
		}
		if h.HoleCard1, err = holeCard(row, col1); err != nil {
			return count, err
		}
		if h.HoleCard2, err = holeCard(row, col2); err != nil {
			return count, err
		}
		if err := sink.InsertPlayerHand(ctx, h); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func holeCard(row []string, col int) (*string, error) {
	if col < 0 || col >= len(row) {
		return nil, nil
	}
	token := strings.TrimSpace(row[col])
	if _, err := engine.ParseCard(token); err != nil {
		return nil, err
	}
	return &token, nil
}

func incomplete(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) == "" {
			return true
		}
	}
	return false
}
