package repositories

import (
	"context"

	"video-guestbook/internal/domain/entities"
)

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	// Get returns (nil, nil) when the session does not exist.
	Get(ctx context.Context, id string) (*entities.WizardSession, error)
	Save(ctx context.Context, session *entities.WizardSession) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.WizardSession, error)
}
