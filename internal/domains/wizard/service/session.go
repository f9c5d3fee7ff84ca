package service

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=../mocks/session_mock.go -package=mocks

import (
	"context"
	"salon/shared/failure"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultSessionIdle = time.Hour

// Sessions keeps one coordinator per started wizard. A wizard belongs to the visitor who
// started it and is forgotten once idle for longer than the configured period.
type Sessions interface {
	Start(ctx context.Context, visitorID string) (string, Coordinator)
	Get(visitorID, sessionID string) (Coordinator, error)
}

type sessionEntry struct {
	visitorID   string
	coordinator Coordinator
	lastSeen    time.Time
}

type sessionsImpl struct {
	deps    Dependencies
	idle    time.Duration
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

func NewSessions(deps Dependencies) Sessions {
	idle := time.Duration(deps.Config.Booking.SessionIdleMinutes) * time.Minute
	if idle <= 0 {
		idle = defaultSessionIdle
	}

	return &sessionsImpl{
		deps:    deps,
		idle:    idle,
		entries: map[string]*sessionEntry{},
	}
}

// Start creates a wizard and loads its locations before returning it.
func (s *sessionsImpl) Start(ctx context.Context, visitorID string) (string, Coordinator) {
	id := uuid.NewString()
	coordinator := NewCoordinator(s.deps, visitorID)

	s.mu.Lock()
	s.evictLocked()
	s.entries[id] = &sessionEntry{visitorID: visitorID, coordinator: coordinator, lastSeen: s.deps.now()}
	s.mu.Unlock()

	coordinator.LoadLocations(ctx)

	return id, coordinator
}

func (s *sessionsImpl) Get(visitorID, sessionID string) (Coordinator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()

	entry, ok := s.entries[sessionID]
	if !ok || entry.visitorID != visitorID {
		return nil, failure.NotFound("booking session not found") //nolint:wrapcheck
	}

	entry.lastSeen = s.deps.now()

	return entry.coordinator, nil
}

func (s *sessionsImpl) evictLocked() {
	cutoff := s.deps.now().Add(-s.idle)

	for id, entry := range s.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			log.Debug().Str("session", id).Str("visitor", entry.visitorID).Msg("booking session expired")
		}
	}
}
