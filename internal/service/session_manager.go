package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/home-weather-service/internal/db/weatherquery"
	"ulascansenturk/home-weather-service/internal/inmemorycache"
	"ulascansenturk/home-weather-service/internal/location"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionManager keeps home screen activations that resolve in the
// background while the client polls them.
type SessionManager interface {
	Start(device location.Provider) SessionView
	Get(id string) (SessionView, error)
	Dispose(id string) error
	Shutdown()
}

type sessionManager struct {
	resolver LocationWeatherResolver
	history  historyRecorder
	sessions *inmemorycache.InMemoryCache[*Session]
	ttl      time.Duration
}

func NewSessionManager(
	resolver LocationWeatherResolver,
	repo weatherquery.Repository,
	ttl time.Duration,
	cleanupInterval time.Duration,
) SessionManager {
	return &sessionManager{
		resolver: resolver,
		history:  historyRecorder{repo: repo},
		sessions: inmemorycache.NewInMemoryCacheProvider(cleanupInterval, func(id string, session *Session) {
			log.Debug().Str("session", id).Msg("disposing session")
			session.Close()
		}),
		ttl: ttl,
	}
}

func (m *sessionManager) Start(device location.Provider) SessionView {
	session := NewSession(context.Background(), uuid.NewString())
	m.sessions.Set(session.ID, session, m.ttl)

	go func() {
		result := m.resolver.Resolve(session.Context(), device, session)
		if !session.Disposed() {
			m.history.record(result)
		}
	}()

	return session.View()
}

func (m *sessionManager) Get(id string) (SessionView, error) {
	session, ok := m.sessions.Get(id)
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}
	return session.View(), nil
}

func (m *sessionManager) Dispose(id string) error {
	if !m.sessions.Delete(id) {
		return ErrSessionNotFound
	}
	return nil
}

func (m *sessionManager) Shutdown() {
	m.sessions.Stop()
}
