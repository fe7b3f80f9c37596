package store

import (
	"errors"
	"sync"

	"trucosrv/domain"
)

// ErrNotFound is returned when no game exists under the requested ID
var ErrNotFound = errors.New("game not found")

// GameStore is the persistence contract for games. Save replaces the whole
// state under the game's ID (last write wins); per-game write serialization
// is the caller's responsibility.
type GameStore interface {
	Load(gameID string) (*domain.Game, error)
	Save(game *domain.Game) error
	List() []*domain.Game
}

// InMemoryGameStore is an in-memory implementation of the GameStore
// interface.
type InMemoryGameStore struct {
	games map[string]*domain.Game
	mutex sync.RWMutex
}

// NewInMemoryGameStore creates a new in-memory game store.
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: make(map[string]*domain.Game),
	}
}

// Load retrieves the game stored under gameID.
func (s *InMemoryGameStore) Load(gameID string) (*domain.Game, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	game, exists := s.games[gameID]
	if !exists {
		return nil, ErrNotFound
	}
	return game, nil
}

// Save stores the game under its ID, replacing any previous state.
func (s *InMemoryGameStore) Save(game *domain.Game) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if game == nil || game.ID == "" {
		return errors.New("game has no ID")
	}

	s.games[game.ID] = game
	return nil
}

// List returns every stored game.
func (s *InMemoryGameStore) List() []*domain.Game {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	games := make([]*domain.Game, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, game)
	}
	return games
}
