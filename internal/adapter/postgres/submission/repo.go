// Package submission implements the submission repository using PostgreSQL.
// Secondary-index lookups are plain indexed columns; conditional writes are
// single UPDATE/DELETE statements with RETURNING, so the existence check and
// the mutation are one atomic round trip.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/gametime-api/internal/adapter/postgres"
	"github.com/heartmarshall/gametime-api/internal/domain"
)

const (
	entity = "submission"
	table  = "submissions"
)

var columns = []string{
	"submission_id",
	"user_id",
	"game_title",
	"platform",
	"completion_type",
	"hours_played",
	"difficulty",
	"notes",
	"created_at",
	"updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// indexColumns maps each secondary index onto the column it is keyed by.
var indexColumns = map[domain.SubmissionIndex]string{
	domain.IndexUser: "user_id",
	domain.IndexGame: "game_title",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new submission repository. db is used whenever the context
// carries no transaction.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a submission by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"submission_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get submission: %w", err)
	}

	s, err := scanSubmission(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return s, nil
}

// QueryByIndex returns every submission whose index column equals key,
// ordered by created_at. Returns an empty slice when nothing matches.
func (r *Repo) QueryByIndex(ctx context.Context, index domain.SubmissionIndex, key string, descending bool) ([]*domain.Submission, error) {
	column, ok := indexColumns[index]
	if !ok {
		return nil, fmt.Errorf("query submissions: unknown index %q", index)
	}

	order := "ASC"
	if descending {
		order = "DESC"
	}

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{column: key}).
		OrderBy("created_at "+order, "submission_id "+order).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query submissions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity+" "+index.String(), uuid.Nil)
	}
	defer rows.Close()

	subs := make([]*domain.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity+" "+index.String(), uuid.Nil)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity+" "+index.String(), uuid.Nil)
	}

	return subs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Put writes a submission, replacing any row with the same id.
func (r *Repo) Put(ctx context.Context, s *domain.Submission) error {
	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			s.ID, s.UserID, s.GameTitle, s.Platform, s.CompletionType,
			s.HoursPlayed, s.Difficulty, s.Notes, s.CreatedAt, s.UpdatedAt,
		).
		Suffix(upsertSuffix()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build put submission: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, s.ID)
	}
	return nil
}

// UpdateIfExists applies patch to an existing submission and returns the
// updated row. Returns domain.ErrConditionFailed if the id does not exist.
func (r *Repo) UpdateIfExists(ctx context.Context, id uuid.UUID, patch domain.SubmissionPatch) (*domain.Submission, error) {
	q := psql.Update(table).Set("updated_at", patch.UpdatedAt)
	if v, ok := patch.HoursPlayed.Get(); ok {
		q = q.Set("hours_played", v)
	}
	if v, ok := patch.Platform.Get(); ok {
		q = q.Set("platform", v)
	}
	if v, ok := patch.CompletionType.Get(); ok {
		q = q.Set("completion_type", v)
	}
	if v, ok := patch.Notes.Get(); ok {
		q = q.Set("notes", v)
	}

	sql, args, err := q.Where(squirrel.Eq{"submission_id": id}).Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update submission: %w", err)
	}

	s, err := scanSubmission(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, conditionalError(err, id)
	}
	return s, nil
}

// DeleteIfExists removes a submission and returns the removed row.
// Returns domain.ErrConditionFailed if the id does not exist.
func (r *Repo) DeleteIfExists(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"submission_id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete submission: %w", err)
	}

	s, err := scanSubmission(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, conditionalError(err, id)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// conditionalError reports a missing row of a conditional write as
// domain.ErrConditionFailed rather than domain.ErrNotFound.
func conditionalError(err error, id uuid.UUID) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConditionFailed)
	}
	return postgres.MapError(err, entity, id)
}

func upsertSuffix() string {
	set := make([]string, 0, len(columns)-1)
	for _, c := range columns[1:] {
		set = append(set, c+" = EXCLUDED."+c)
	}
	return "ON CONFLICT (submission_id) DO UPDATE SET " + strings.Join(set, ", ")
}

// scanSubmission reads one row in the order of columns.
func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.GameTitle,
		&s.Platform,
		&s.CompletionType,
		&s.HoursPlayed,
		&s.Difficulty,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
