package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"allin-analytics/server/engine"
)

type partitionKey struct {
	gameDate   string
	handNumber int
}

type memGame struct {
	uuid    string
	players []string
}

// Mem is the in-memory reference round store and game registry. It gives
// the same atomicity guarantee as the Postgres store: one mutex per
// (date, hand) partition serializes the duplicate check and append, while
// disjoint hands proceed in parallel.
type Mem struct {
	mu     sync.Mutex
	games  map[string]memGame
	rounds map[partitionKey][]engine.RoundRecord
	locks  map[partitionKey]*sync.Mutex
}

func NewMem() *Mem {
	return &Mem{
		games:  make(map[string]memGame),
		rounds: make(map[partitionKey][]engine.RoundRecord),
		locks:  make(map[partitionKey]*sync.Mutex),
	}
}

func (m *Mem) partitionLock(k partitionKey) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[k]
	if !ok {
		l = &sync.Mutex{}
		m.locks[k] = l
	}
	return l
}

func (m *Mem) CreateGame(ctx context.Context, gameDate string, players []string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[gameDate]; ok {
		return "", engine.E(engine.KindDuplicateGame, "a game already exists for %s", gameDate)
	}
	id := uuid.NewString()
	m.games[gameDate] = memGame{uuid: id, players: append([]string(nil), players...)}
	return id, nil
}

func (m *Mem) GameExists(ctx context.Context, gameDate string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.games[gameDate]
	return ok, nil
}

func (m *Mem) GameUUIDForDate(ctx context.Context, gameDate string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.games[gameDate].uuid, nil
}

func (m *Mem) AppendRound(ctx context.Context, rec engine.RoundRecord) error {
	k := partitionKey{rec.GameDate, rec.HandNumber}
	l := m.partitionLock(k)
	l.Lock()
	defer l.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rounds[k] {
		if existing.Street == rec.Street {
			return engine.E(engine.KindDuplicateStreet,
				"street %s already recorded for hand %d on %s", rec.Street, rec.HandNumber, rec.GameDate)
		}
	}
	m.rounds[k] = append(m.rounds[k], rec.Clone())
	return nil
}

func (m *Mem) FetchRounds(ctx context.Context, gameDate string, handNumber int) ([]engine.RoundRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := m.rounds[partitionKey{gameDate, handNumber}]
	out := make([]engine.RoundRecord, 0, len(stored))
	for _, rec := range stored {
		out = append(out, rec.Clone())
	}
	return out, nil
}
