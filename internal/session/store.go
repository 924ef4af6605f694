// Package session keeps wizard sessions between requests. Sessions live
// for an idle TTL in one of three backends: process memory, a libSQL
// database or Redis.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/livinggrainco/site/internal/wizard"
)

var ErrNotFound = errors.New("session not found")

// Store persists wizard sessions. Save refreshes the idle TTL.
type Store interface {
	Get(ctx context.Context, id string) (*wizard.Session, error)
	Save(ctx context.Context, s *wizard.Session) error
	Delete(ctx context.Context, id string) error
	Check(ctx context.Context) error
}

// Sweeper is implemented by stores that must evict expired sessions
// themselves.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id could have come from NewID. Cookies carrying
// anything else are ignored.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}
