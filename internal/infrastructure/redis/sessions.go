package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"tapCalc/internal/engine"
	"tapCalc/internal/ports"
)

var _ ports.ISessionStore = (*SessionStore)(nil)

// Ключи сессий живут сутки: брошенный калькулятор не копит мусор в Redis.
const sessionTTL = 24 * time.Hour

const keyPrefix = "session:"

// SessionStore реализует ports.ISessionStore через Redis.
// Состояние движка хранится как JSON под ключом "session:<id>".
type SessionStore struct {
	cli *Client
	log *slog.Logger
}

// NewSessionStore возвращает хранилище сессий, реализующее ports.ISessionStore.
func NewSessionStore(cli *Client, log *slog.Logger) *SessionStore {
	return &SessionStore{cli: cli, log: log}
}

// Get возвращает состояние сессии. Если ключа нет — found == false.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (engine.State, bool, error) {
	raw, err := s.cli.Client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil { // сессии нет
			return engine.State{}, false, nil
		}
		s.log.Debug("session get failed", "session", sessionID, "error", err)
		return engine.State{}, false, err
	}
	var state engine.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.log.Debug("session unmarshal failed", "session", sessionID, "error", err)
		return engine.State{}, false, fmt.Errorf("session unmarshal: %w", err)
	}
	return state, true, nil
}

// Set сохраняет состояние сессии, продлевая TTL.
func (s *SessionStore) Set(ctx context.Context, sessionID string, state engine.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.cli.Client.Set(ctx, keyPrefix+sessionID, raw, sessionTTL).Err(); err != nil {
		s.log.Debug("session set failed", "session", sessionID, "error", err)
		return err
	}
	return nil
}

// Delete удаляет состояние сессии. Отсутствующий ключ ошибкой не считается.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cli.Client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		s.log.Debug("session delete failed", "session", sessionID, "error", err)
		return err
	}
	return nil
}
