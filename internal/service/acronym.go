package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"acronymer/internal/domain"
	"acronymer/internal/notify"
	"acronymer/internal/repository"
)

// AcronymService handles acronym business logic
type AcronymService struct {
	repo     repository.AcronymRepository
	cache    repository.AcronymCache
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewAcronymService creates a new acronym service. cache and notifier may be nil.
func NewAcronymService(
	repo repository.AcronymRepository,
	cache repository.AcronymCache,
	notifier notify.Notifier,
	logger *zap.Logger,
) *AcronymService {
	return &AcronymService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateAcronymRequest carries the fields a producer supplies
type CreateAcronymRequest struct {
	Acronym       string `json:"acronym"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	URLSlug       string `json:"url_slug,omitempty"`
	Type          string `json:"type,omitempty"`
	SourceCountry string `json:"source_country,omitempty"`
	Language      string `json:"language,omitempty"`
}

// AcronymPage is one page of a listing
type AcronymPage struct {
	Acronyms []domain.Acronym `json:"acronyms"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// List returns acronyms matching q
func (s *AcronymService) List(ctx context.Context, q domain.AcronymQuery) (*AcronymPage, error) {
	q = q.Normalize()

	acronyms, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if acronyms == nil {
		acronyms = []domain.Acronym{}
	}

	return &AcronymPage{
		Acronyms: acronyms,
		Total:    total,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}, nil
}

// Get returns the acronym with id, reading through the cache
func (s *AcronymService) Get(ctx context.Context, id string) (*domain.Acronym, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.GetAcronym(ctx, id)
		if err != nil {
			s.logger.Warn("Failed to read acronym cache", zap.String("id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.storeInCache(ctx, a)
	return a, nil
}

// GetBySlug returns the acronym with the given url slug
func (s *AcronymService) GetBySlug(ctx context.Context, urlSlug string) (*domain.Acronym, error) {
	urlSlug = strings.TrimSpace(urlSlug)
	if urlSlug == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetBySlug(ctx, urlSlug)
}

// Create validates and stores a new acronym
func (s *AcronymService) Create(ctx context.Context, req CreateAcronymRequest) (*domain.Acronym, error) {
	a := &domain.Acronym{
		ID:            uuid.NewString(),
		Acronym:       strings.TrimSpace(req.Acronym),
		FullName:      strings.TrimSpace(req.FullName),
		Description:   strings.TrimSpace(req.Description),
		Category:      strings.TrimSpace(req.Category),
		URLSlug:       strings.TrimSpace(req.URLSlug),
		Type:          strings.TrimSpace(req.Type),
		SourceCountry: strings.TrimSpace(req.SourceCountry),
		Language:      strings.TrimSpace(req.Language),
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if a.URLSlug == "" {
		a.URLSlug = slug.Make(a.Acronym + " " + a.FullName)
	} else {
		a.URLSlug = slug.Make(a.URLSlug)
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("Acronym created",
		zap.String("id", a.ID),
		zap.String("acronym", a.Acronym),
		zap.String("url_slug", a.URLSlug),
	)

	s.notify(notify.Notification{
		Severity: notify.SeveritySuccess,
		Key:      domain.KeyToastAcronymCreated,
		Message:  "Acronym added",
		Subject:  a.Acronym,
	})

	return a, nil
}

// Vote records a like or dislike and returns the updated acronym
func (s *AcronymService) Vote(ctx context.Context, id, vote string) (*domain.Acronym, error) {
	v, err := domain.ParseVote(vote)
	if err != nil {
		return nil, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("vote %s: %w", v, domain.ErrNotFound)
	}

	a, err := s.repo.Vote(ctx, id, v)
	if err != nil {
		return nil, fmt.Errorf("vote %s: %w", v, err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteAcronym(ctx, id); err != nil {
			s.logger.Warn("Failed to invalidate acronym cache", zap.String("id", id), zap.Error(err))
		}
	}

	s.notify(notify.Notification{
		Severity: notify.SeverityInfo,
		Key:      domain.KeyToastVoteRecorded,
		Message:  "Thanks for your vote",
		Subject:  a.Acronym,
	})

	return a, nil
}

// Categories returns the distinct categories
func (s *AcronymService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *AcronymService) storeInCache(ctx context.Context, a *domain.Acronym) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetAcronym(ctx, a); err != nil {
		s.logger.Warn("Failed to write acronym cache", zap.String("id", a.ID), zap.Error(err))
	}
}

func (s *AcronymService) notify(n notify.Notification) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(n)
}
