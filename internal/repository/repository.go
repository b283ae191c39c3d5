package repository

import (
	"context"

	"acronymer/internal/domain"
)

// AcronymRepository defines acronym data operations
type AcronymRepository interface {
	List(ctx context.Context, q domain.AcronymQuery) ([]domain.Acronym, int, error)
	GetByID(ctx context.Context, id string) (*domain.Acronym, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Acronym, error)
	Create(ctx context.Context, a *domain.Acronym) error
	Vote(ctx context.Context, id string, vote domain.Vote) (*domain.Acronym, error)
	Categories(ctx context.Context) ([]string, error)
}

// AcronymCache stores acronyms by id. GetAcronym returns nil, nil on a miss.
type AcronymCache interface {
	GetAcronym(ctx context.Context, id string) (*domain.Acronym, error)
	SetAcronym(ctx context.Context, a *domain.Acronym) error
	DeleteAcronym(ctx context.Context, id string) error
}
