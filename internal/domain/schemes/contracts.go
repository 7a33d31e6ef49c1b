package schemes

import (
	"context"
	"errors"
)

// ErrSchemeNotFound is returned when no scheme matches the lookup.
var ErrSchemeNotFound = errors.New("scheme not found")

// SchemeQuery filters scheme listings.
type SchemeQuery struct {
	Category   string
	State      string
	OnlyActive bool
	Limit      int
	Offset     int
}

// SchemeService defines government scheme operations.
type SchemeService interface {
	List(ctx context.Context, query *SchemeQuery) ([]*Scheme, error)
	GetByCode(ctx context.Context, schemeCode string) (*Scheme, error)
	// Upsert creates the scheme or updates the one with the same code.
	Upsert(ctx context.Context, scheme *Scheme) (*Scheme, error)
}

// ApplicationService tracks user applications to schemes.
type ApplicationService interface {
	// Apply records an application of userID to the scheme with schemeCode.
	Apply(ctx context.Context, userID, schemeCode string, notes *string) (*Application, error)
	ListByUser(ctx context.Context, userID string) ([]*Application, error)
	UpdateStatus(ctx context.Context, applicationID, status string) (*Application, error)
}

// SchemeRepository defines the interface for scheme persistence.
type SchemeRepository interface {
	Create(ctx context.Context, scheme *Scheme) error
	List(ctx context.Context, query *SchemeQuery) ([]*Scheme, error)
	GetByCode(ctx context.Context, schemeCode string) (*Scheme, error)
	UpdateByID(ctx context.Context, scheme *Scheme) error
}

// ApplicationRepository defines the interface for application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	GetByID(ctx context.Context, applicationID string) (*Application, error)
	ListByUser(ctx context.Context, userID string) ([]*Application, error)
	UpdateByID(ctx context.Context, application *Application) error
}
