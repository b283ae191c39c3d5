package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func requiredOnly() Acronym {
	return Acronym{
		ID:          "a1",
		Acronym:     "NATO",
		FullName:    "North Atlantic Treaty Organization",
		Description: "Intergovernmental military alliance",
		Category:    "politics",
	}
}

func TestAcronym_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(a *Acronym)
		expectedError bool
		missing       string
	}{
		{
			name:          "required fields only",
			mutate:        func(a *Acronym) {},
			expectedError: false,
		},
		{
			name:          "missing id",
			mutate:        func(a *Acronym) { a.ID = "" },
			expectedError: true,
			missing:       "id",
		},
		{
			name:          "missing acronym",
			mutate:        func(a *Acronym) { a.Acronym = "" },
			expectedError: true,
			missing:       "acronym",
		},
		{
			name:          "blank full name",
			mutate:        func(a *Acronym) { a.FullName = "   " },
			expectedError: true,
			missing:       "full_name",
		},
		{
			name:          "missing description",
			mutate:        func(a *Acronym) { a.Description = "" },
			expectedError: true,
			missing:       "description",
		},
		{
			name:          "missing category",
			mutate:        func(a *Acronym) { a.Category = "" },
			expectedError: true,
			missing:       "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := requiredOnly()
			tt.mutate(&a)

			err := a.Validate()

			if tt.expectedError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.Contains(t, err.Error(), tt.missing)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAcronymFilters_Matches(t *testing.T) {
	a := requiredOnly()
	a.Language = "en"
	a.Type = "organization"

	tests := []struct {
		name     string
		filters  AcronymFilters
		expected bool
	}{
		{
			name:     "empty filter matches everything",
			filters:  AcronymFilters{},
			expected: true,
		},
		{
			name:     "category match is case insensitive",
			filters:  AcronymFilters{Category: " Politics "},
			expected: true,
		},
		{
			name:     "all criteria match",
			filters:  AcronymFilters{Category: "politics", Language: "en", Type: "organization"},
			expected: true,
		},
		{
			name:     "one criterion fails",
			filters:  AcronymFilters{Category: "politics", Language: "fr"},
			expected: false,
		},
		{
			name:     "type mismatch",
			filters:  AcronymFilters{Type: "initialism"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filters.Matches(a))
		})
	}
}

func TestAcronymFilters_EmptyMatchesEveryRecord(t *testing.T) {
	records := []Acronym{
		requiredOnly(),
		{ID: "b", Acronym: "UN", Category: "politics", Language: "fr", Type: "org"},
		{},
	}

	var f AcronymFilters
	assert.True(t, f.IsEmpty())
	for _, r := range records {
		assert.True(t, f.Matches(r))
	}
}

func TestAcronymQuery_Normalize(t *testing.T) {
	tests := []struct {
		name           string
		query          AcronymQuery
		expectedLimit  int
		expectedOffset int
	}{
		{
			name:           "defaults",
			query:          AcronymQuery{},
			expectedLimit:  DefaultQueryLimit,
			expectedOffset: 0,
		},
		{
			name:           "limit capped",
			query:          AcronymQuery{Limit: 1000, Offset: 40},
			expectedLimit:  MaxQueryLimit,
			expectedOffset: 40,
		},
		{
			name:           "negative offset",
			query:          AcronymQuery{Limit: 5, Offset: -3},
			expectedLimit:  5,
			expectedOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query.Normalize()
			assert.Equal(t, tt.expectedLimit, q.Limit)
			assert.Equal(t, tt.expectedOffset, q.Offset)
		})
	}
}

func TestAcronymQuery_MatchesSearch(t *testing.T) {
	a := requiredOnly()

	assert.True(t, AcronymQuery{Search: "nato"}.Matches(a))
	assert.True(t, AcronymQuery{Search: "atlantic"}.Matches(a))
	assert.False(t, AcronymQuery{Search: "pacific"}.Matches(a))
	assert.False(t, AcronymQuery{Search: "nato", Filters: AcronymFilters{Category: "science"}}.Matches(a))
}

func TestParseVote(t *testing.T) {
	v, err := ParseVote("Like")
	assert.NoError(t, err)
	assert.Equal(t, VoteLike, v)

	v, err = ParseVote(" dislike ")
	assert.NoError(t, err)
	assert.Equal(t, VoteDislike, v)

	_, err = ParseVote("love")
	assert.ErrorIs(t, err, ErrInvalidVote)
}

func TestTranslationKey_IsKnown(t *testing.T) {
	for _, k := range KnownTranslationKeys() {
		assert.True(t, k.IsKnown(), string(k))
	}
	assert.False(t, TranslationKey("does.not.exist").IsKnown())
}
