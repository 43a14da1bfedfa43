// Package game orchestrates the street submission and hand history paths
// over the store interfaces.
package game

import (
	"context"
	"strings"

	"github.com/thoas/go-funk"

	"allin-analytics/server/engine"
)

// RoundStore is the append-only street log the service writes through.
type RoundStore interface {
	// AppendRound adds one record to the (game date, hand) partition and
	// fails with kind DuplicateStreet if that street was already recorded.
	// The duplicate check and the append are atomic per partition.
	AppendRound(ctx context.Context, rec engine.RoundRecord) error
	// FetchRounds returns the hand's records oldest first; an empty slice
	// when none exist, never an error for plain absence.
	FetchRounds(ctx context.Context, gameDate string, handNumber int) ([]engine.RoundRecord, error)
}

// GameRegistry tracks the one game allowed per calendar date.
type GameRegistry interface {
	CreateGame(ctx context.Context, gameDate string, players []string) (string, error)
	GameExists(ctx context.Context, gameDate string) (bool, error)
}

type Service struct {
	rounds RoundStore
	games  GameRegistry
}

func NewService(rounds RoundStore, games GameRegistry) *Service {
	return &Service{rounds: rounds, games: games}
}

// CreateGame registers the game for a date with its roster.
func (s *Service) CreateGame(ctx context.Context, gameDate string, players []string) (string, error) {
	if _, err := engine.ValidateGameDate(gameDate); err != nil {
		return "", err
	}
	if err := validatePlayers(players); err != nil {
		return "", err
	}
	return s.games.CreateGame(ctx, gameDate, players)
}

// SubmitCommunity runs the write path for one street submission: game
// existence, date validation, street classification, card validation,
// append, then a re-fetch so the response reflects durable state.
func (s *Service) SubmitCommunity(ctx context.Context, gameDate string, handNumber int, cc engine.CommunityCards, players []string) ([]engine.StreetView, error) {
	ok, err := s.games.GameExists(ctx, gameDate)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, engine.E(engine.KindGameNotFound, "no game exists for %s", gameDate)
	}
	if _, err := engine.ValidateGameDate(gameDate); err != nil {
		return nil, err
	}
	street := cc.Street()
	if street == engine.StreetInvalid {
		return nil, engine.E(engine.KindInvalidGameState, "a river card cannot be revealed without a turn card")
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	rec := engine.NewRoundRecord(gameDate, handNumber, cc, players)
	if err := s.rounds.AppendRound(ctx, rec); err != nil {
		return nil, err
	}
	return s.HandHistory(ctx, gameDate, handNumber)
}

// HandHistory is the read path: ordered fetch plus reconstruction. A hand
// with no records yet reconstructs to zero views.
func (s *Service) HandHistory(ctx context.Context, gameDate string, handNumber int) ([]engine.StreetView, error) {
	if _, err := engine.ValidateGameDate(gameDate); err != nil {
		return nil, err
	}
	records, err := s.rounds.FetchRounds(ctx, gameDate, handNumber)
	if err != nil {
		return nil, err
	}
	return engine.Reconstruct(records)
}

func validatePlayers(players []string) error {
	if len(players) == 0 {
		return engine.E(engine.KindInvalidPlayerList, "active_players must not be empty")
	}
	for _, p := range players {
		if strings.TrimSpace(p) == "" {
			return engine.E(engine.KindInvalidPlayerList, "player identifiers must not be blank")
		}
	}
	if len(funk.UniqString(players)) != len(players) {
		return engine.E(engine.KindInvalidPlayerList, "player identifiers must be unique")
	}
	return nil
}
