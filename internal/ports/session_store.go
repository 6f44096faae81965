package ports

import (
	"context"

	"playtrack/internal/domain"
)

// SessionReader reads session records
type SessionReader interface {
	FindActive(ctx context.Context, playerID string) ([]domain.Session, error)
	FindAll(ctx context.Context) ([]domain.Session, error)
	FindAllActive(ctx context.Context) ([]domain.Session, error)
}

// SessionWriter persists session records
type SessionWriter interface {
	Save(ctx context.Context, session domain.Session) error
}

// SessionStore is the composite persistence interface
type SessionStore interface {
	SessionReader
	SessionWriter
	Close() error
}
