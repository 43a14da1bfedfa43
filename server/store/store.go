package store

import (
	"context"
	"embed"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"allin-analytics/server/engine"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// uniqueViolation is the Postgres error code for a unique-index conflict.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func storeErr(err error) error {
	return engine.Wrap(engine.KindStoreUnavailable, err, "round store unavailable")
}

/* -----------------------------
   Game registry
------------------------------*/

// CreateGame records the single game allowed for a date and returns its
// UUID. The unique index on game_date makes the at-most-one-game rule
// atomic under concurrent creates.
func (db *DB) CreateGame(ctx context.Context, gameDate string, players []string) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(ctx, `
        INSERT INTO games(game_uuid, game_date, players)
        VALUES ($1,$2,$3)
    `, id, gameDate, players)
	if err != nil {
		if isUniqueViolation(err) {
			return "", engine.E(engine.KindDuplicateGame, "a game already exists for %s", gameDate)
		}
		return "", storeErr(err)
	}
	return id, nil
}

func (db *DB) GameExists(ctx context.Context, gameDate string) (bool, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM games WHERE game_date = $1`, gameDate).Scan(&n); err != nil {
		return false, storeErr(err)
	}
	return n > 0, nil
}

// GameUUIDForDate returns the UUID of the date's game, or "" when none
// exists yet. Absence is not an error.
func (db *DB) GameUUIDForDate(ctx context.Context, gameDate string) (string, error) {
	var id string
	err := db.QueryRow(ctx, `SELECT game_uuid FROM games WHERE game_date = $1`, gameDate).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", storeErr(err)
	}
	return id, nil
}

/* -----------------------------
   Round log
------------------------------*/

// AppendRound appends one street record to the hand's log. The unique
// index on (game_date, hand_number, street) makes the duplicate check part
// of the insert itself, so two concurrent submissions for the same street
// cannot both land.
func (db *DB) AppendRound(ctx context.Context, rec engine.RoundRecord) error {
	var turn, river any
	if rec.Turn != nil {
		turn = rec.Turn.Token()
	}
	if rec.River != nil {
		river = rec.River.Token()
	}
	_, err := db.Exec(ctx, `
        INSERT INTO community_rounds(
            game_date, hand_number, street,
            flop_card_0, flop_card_1, flop_card_2,
            turn_card, river_card, active_players
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, rec.GameDate, rec.HandNumber, string(rec.Street),
		rec.Flop[0].Token(), rec.Flop[1].Token(), rec.Flop[2].Token(),
		turn, river, rec.ActivePlayers)
	if err != nil {
		if isUniqueViolation(err) {
			return engine.E(engine.KindDuplicateStreet,
				"street %s already recorded for hand %d on %s", rec.Street, rec.HandNumber, rec.GameDate)
		}
		return storeErr(err)
	}
	return nil
}

// FetchRounds returns the hand's records oldest first. No records is a
// valid state and yields an empty slice, not an error.
func (db *DB) FetchRounds(ctx context.Context, gameDate string, handNumber int) ([]engine.RoundRecord, error) {
	rows, err := db.Query(ctx, `
        SELECT street, flop_card_0, flop_card_1, flop_card_2,
               turn_card, river_card, active_players
          FROM community_rounds
         WHERE game_date = $1 AND hand_number = $2
         ORDER BY id
    `, gameDate, handNumber)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := []engine.RoundRecord{}
	for rows.Next() {
		var (
			street      string
			flopTokens  [3]string
			turn, river *string
			players     []string
		)
		if err := rows.Scan(&street, &flopTokens[0], &flopTokens[1], &flopTokens[2], &turn, &river, &players); err != nil {
			return nil, storeErr(err)
		}
		rec := engine.RoundRecord{
			GameDate:      gameDate,
			HandNumber:    handNumber,
			Street:        engine.Street(street),
			ActivePlayers: players,
		}
		for i, tok := range flopTokens {
			if rec.Flop[i], err = engine.ParseCard(tok); err != nil {
				return nil, err
			}
		}
		if rec.Turn, err = parseOptionalCard(turn); err != nil {
			return nil, err
		}
		if rec.River, err = parseOptionalCard(river); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func parseOptionalCard(token *string) (*engine.Card, error) {
	if token == nil {
		return nil, nil
	}
	c, err := engine.ParseCard(*token)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

/* -----------------------------
   Player hand histories (CSV ETL)
------------------------------*/

// PlayerHand is one imported hole-card row for a player.
type PlayerHand struct {
	GameUUID   string
	GameDate   string
	PlayerID   string
	HandNumber int
	HoleCard1  *string
	HoleCard2  *string
}

func (db *DB) InsertPlayerHand(ctx context.Context, h PlayerHand) error {
	var c1, c2 any
	if h.HoleCard1 != nil {
		c1 = *h.HoleCard1
	}
	if h.HoleCard2 != nil {
		c2 = *h.HoleCard2
	}
	_, err := db.Exec(ctx, `
        INSERT INTO player_hands(game_uuid, game_date, player_id, hand_number, hole_card_1, hole_card_2)
        VALUES ($1,$2,$3,$4,$5,$6)
    `, h.GameUUID, h.GameDate, h.PlayerID, h.HandNumber, c1, c2)
	if err != nil {
		return storeErr(err)
	}
	return nil
}
