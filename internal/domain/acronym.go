package domain

import (
	"fmt"
	"strings"
	"time"
)

// Acronym represents an abbreviation and its metadata
type Acronym struct {
	ID            string    `json:"id"`
	Acronym       string    `json:"acronym"`
	FullName      string    `json:"full_name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	URLSlug       string    `json:"url_slug,omitempty"`
	Likes         int       `json:"likes,omitempty"`
	Dislikes      int       `json:"dislikes,omitempty"`
	Type          string    `json:"type,omitempty"`
	SourceCountry string    `json:"source_country,omitempty"`
	Language      string    `json:"language,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks that every required field is present
func (a *Acronym) Validate() error {
	var missing []string
	if strings.TrimSpace(a.ID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(a.Acronym) == "" {
		missing = append(missing, "acronym")
	}
	if strings.TrimSpace(a.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(a.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(a.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// AcronymFilters narrows a collection of acronyms.
// Set fields combine with AND; an empty filter matches everything.
type AcronymFilters struct {
	Category string `json:"category,omitempty"`
	Language string `json:"language,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Normalize trims every criterion
func (f AcronymFilters) Normalize() AcronymFilters {
	return AcronymFilters{
		Category: strings.TrimSpace(f.Category),
		Language: strings.TrimSpace(f.Language),
		Type:     strings.TrimSpace(f.Type),
	}
}

// IsEmpty reports whether no criterion is set
func (f AcronymFilters) IsEmpty() bool {
	n := f.Normalize()
	return n.Category == "" && n.Language == "" && n.Type == ""
}

// Matches reports whether a satisfies every set criterion.
// Language compares against the acronym's own language, not the UI locale.
func (f AcronymFilters) Matches(a Acronym) bool {
	n := f.Normalize()
	return matchField(n.Category, a.Category) &&
		matchField(n.Language, a.Language) &&
		matchField(n.Type, a.Type)
}

func matchField(criterion, value string) bool {
	if criterion == "" {
		return true
	}
	return strings.EqualFold(criterion, strings.TrimSpace(value))
}

// Pagination limits for acronym queries
const (
	DefaultQueryLimit = 20
	MaxQueryLimit     = 100
)

// AcronymQuery is a filtered, paginated search over acronyms
type AcronymQuery struct {
	Filters AcronymFilters
	Search  string
	Limit   int
	Offset  int
}

// Normalize applies default pagination and trims input
func (q AcronymQuery) Normalize() AcronymQuery {
	q.Filters = q.Filters.Normalize()
	q.Search = strings.TrimSpace(q.Search)
	if q.Limit <= 0 {
		q.Limit = DefaultQueryLimit
	}
	if q.Limit > MaxQueryLimit {
		q.Limit = MaxQueryLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// Matches applies filters and search to a single record
func (q AcronymQuery) Matches(a Acronym) bool {
	if !q.Filters.Matches(a) {
		return false
	}
	s := strings.ToLower(strings.TrimSpace(q.Search))
	if s == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Acronym), s) ||
		strings.Contains(strings.ToLower(a.FullName), s)
}

// Vote is a reaction to an acronym
type Vote string

const (
	VoteLike    Vote = "like"
	VoteDislike Vote = "dislike"
)

// ParseVote converts user input into a Vote
func ParseVote(s string) (Vote, error) {
	switch Vote(strings.ToLower(strings.TrimSpace(s))) {
	case VoteLike:
		return VoteLike, nil
	case VoteDislike:
		return VoteDislike, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVote, s)
}
