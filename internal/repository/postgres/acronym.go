package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"acronymer/internal/domain"
)

const uniqueViolation = "23505"

const acronymColumns = `id, acronym, full_name, description, category, url_slug,
	likes, dislikes, type, source_country, language, created_at, updated_at`

// AcronymRepo implements repository.AcronymRepository
type AcronymRepo struct {
	db *sql.DB
}

// NewAcronymRepo creates a new acronym repository
func NewAcronymRepo(db *sql.DB) *AcronymRepo {
	return &AcronymRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAcronym(row rowScanner) (*domain.Acronym, error) {
	var a domain.Acronym
	var urlSlug, typ, sourceCountry, lang sql.NullString
	err := row.Scan(
		&a.ID, &a.Acronym, &a.FullName, &a.Description, &a.Category, &urlSlug,
		&a.Likes, &a.Dislikes, &typ, &sourceCountry, &lang, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.URLSlug = urlSlug.String
	a.Type = typ.String
	a.SourceCountry = sourceCountry.String
	a.Language = lang.String
	return &a, nil
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

// buildWhere turns filters and search into a conjunctive WHERE clause.
// Placeholders start at $1.
func buildWhere(q domain.AcronymQuery) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	f := q.Filters.Normalize()
	if f.Category != "" {
		add("LOWER(category) = LOWER($%d)", f.Category)
	}
	if f.Language != "" {
		add("LOWER(language) = LOWER($%d)", f.Language)
	}
	if f.Type != "" {
		add("LOWER(type) = LOWER($%d)", f.Type)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(acronym ILIKE $%d OR full_name ILIKE $%d)", n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// List returns one page of acronyms matching q and the total match count
func (r *AcronymRepo) List(ctx context.Context, q domain.AcronymQuery) ([]domain.Acronym, int, error) {
	q = q.Normalize()
	where, args := buildWhere(q)

	var total int
	countQuery := `SELECT COUNT(*) FROM acronyms` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count acronyms: %w", err)
	}

	listArgs := append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(`SELECT %s FROM acronyms%s ORDER BY acronym ASC, id ASC LIMIT $%d OFFSET $%d`,
		acronymColumns, where, len(listArgs)-1, len(listArgs))

	rows, err := r.db.QueryContext(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list acronyms: %w", err)
	}
	defer rows.Close()

	var acronyms []domain.Acronym
	for rows.Next() {
		a, err := scanAcronym(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan acronym: %w", err)
		}
		acronyms = append(acronyms, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return acronyms, total, nil
}

// GetByID returns the acronym with id
func (r *AcronymRepo) GetByID(ctx context.Context, id string) (*domain.Acronym, error) {
	query := `SELECT ` + acronymColumns + ` FROM acronyms WHERE id = $1`
	a, err := scanAcronym(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get acronym by id: %w", err)
	}
	return a, nil
}

// GetBySlug returns the acronym with the given url slug
func (r *AcronymRepo) GetBySlug(ctx context.Context, slug string) (*domain.Acronym, error) {
	query := `SELECT ` + acronymColumns + ` FROM acronyms WHERE url_slug = $1`
	a, err := scanAcronym(r.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get acronym by slug: %w", err)
	}
	return a, nil
}

// Create inserts a and fills its timestamps
func (r *AcronymRepo) Create(ctx context.Context, a *domain.Acronym) error {
	query := `
		INSERT INTO acronyms (id, acronym, full_name, description, category, url_slug,
			likes, dislikes, type, source_country, language)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.Acronym, a.FullName, a.Description, a.Category, nullString(a.URLSlug),
		a.Likes, a.Dislikes, nullString(a.Type), nullString(a.SourceCountry), nullString(a.Language),
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Constraint)
		}
		return fmt.Errorf("create acronym: %w", err)
	}
	return nil
}

// Vote increments the like or dislike counter and returns the updated row
func (r *AcronymRepo) Vote(ctx context.Context, id string, vote domain.Vote) (*domain.Acronym, error) {
	var column string
	switch vote {
	case domain.VoteLike:
		column = "likes"
	case domain.VoteDislike:
		column = "dislikes"
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidVote, vote)
	}

	query := fmt.Sprintf(`
		UPDATE acronyms
		SET %[1]s = %[1]s + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING %[2]s
	`, column, acronymColumns)

	a, err := scanAcronym(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("vote acronym: %w", err)
	}
	return a, nil
}

// Categories returns every distinct category in alphabetical order
func (r *AcronymRepo) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM acronyms ORDER BY category`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
