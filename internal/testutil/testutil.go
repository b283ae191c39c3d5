package testutil

import (
	"acronymer/internal/domain"
	"time"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestAcronym creates an acronym with the required fields set
func NewTestAcronym(id, acronym, fullName, category string) *domain.Acronym {
	return &domain.Acronym{
		ID:          id,
		Acronym:     acronym,
		FullName:    fullName,
		Description: fullName + " description",
		Category:    category,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
