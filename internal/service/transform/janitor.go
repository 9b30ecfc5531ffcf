package transform

import (
	"context"
	"log/slog"
)

// Run evicts sessions idle longer than the session TTL, checking every
// janitor interval, until ctx is done. Remaining sessions are closed on exit.
func (m *Manager) Run(ctx context.Context) error {
	m.log.InfoContext(ctx, "session janitor started",
		slog.Duration("interval", m.cfg.JanitorInterval),
		slog.Duration("ttl", m.cfg.SessionTTL))

	for {
		timer := m.clock.NewTimer(m.cfg.JanitorInterval)

		select {
		case <-ctx.Done():
			timer.Stop()
			n := m.closeAll()
			m.log.InfoContext(ctx, "session janitor stopped", slog.Int("closed", n))
			return nil
		case <-timer.C():
			if n := m.evictIdle(); n > 0 {
				m.log.InfoContext(ctx, "idle sessions evicted", slog.Int("count", n))
			}
		}
	}
}

// evictIdle removes sessions idle past the TTL. Busy sessions are kept.
func (m *Manager) evictIdle() int {
	now := m.clock.Now()

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if s.idleSince(now) > m.cfg.SessionTTL && !s.busy() {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	for _, s := range stale {
		s.close()
	}
	if len(stale) > 0 {
		m.metrics.SessionsActive(n)
	}

	return len(stale)
}

func (m *Manager) closeAll() int {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for id, s := range m.sessions {
		all = append(all, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range all {
		s.close()
	}
	m.metrics.SessionsActive(0)

	return len(all)
}
