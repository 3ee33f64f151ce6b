// Package session keeps the server-side login state of browser clients.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Store is keyed by session id. Get returns ErrNotFound for unknown or expired ids.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Set(ctx context.Context, id string, s Session) error
	Destroy(ctx context.Context, id string) error
}

func NewID() string {
	return uuid.NewString()
}
