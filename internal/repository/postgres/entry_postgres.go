package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"entryapi/internal/model"
	"entryapi/internal/repository"
)

// Postgres error codes that indicate the entries table does not look the way
// this repository expects.
const (
	codeUndefinedColumn = "42703"
	codeUndefinedTable  = "42P01"
)

// entryColumns is the fixed, ordered column list used by every statement in
// this file. Order matters: scan destinations follow it exactly.
const entryColumns = `full_name, email_address, contact_number, submission_capacity,
	team_members, prize_cheque_name, consent_declarations,
	challenge, insight, strategic_idea, strategy_execution, expected_results,
	entry_topic, concept_strategy, objective, rationale, measurement,
	insight_description, strategic_solution, creative_plan,
	communication_strategy, result_impact, why_outstanding, result_scope,
	visual_links`

// EntryPostgres is a PostgreSQL implementation of repository.EntryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type EntryPostgres struct {
	db *sql.DB
}

// NewEntryPostgres creates a new EntryPostgres repository.
func NewEntryPostgres(db *sql.DB) *EntryPostgres {
	return &EntryPostgres{db: db}
}

var _ repository.EntryRepository = (*EntryPostgres)(nil)

// Create inserts a new entry row and returns the stored record with its
// generated identifier. Store failures are classified into the repository's
// typed errors so callers can log schema faults distinctly.
func (r *EntryPostgres) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	const q = `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING id, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		entry.FullName,
		entry.EmailAddress,
		entry.ContactNumber,
		entry.Capacity,
		entry.TeamMembers,
		entry.ChequeName,
		entry.ConsentDeclarations,
		entry.Challenge,
		entry.Insight,
		entry.StrategicIdea,
		entry.StrategyExecution,
		entry.ExpectedResults,
		entry.EntryTopic,
		entry.ConceptStrategy,
		entry.Objective,
		entry.Rationale,
		entry.Measurement,
		entry.InsightDescription,
		entry.StrategicSolution,
		entry.CreativePlan,
		entry.CommunicationStrategy,
		entry.ResultImpact,
		entry.WhyOutstanding,
		entry.ResultScope,
		entry.VisualLinks,
	)

	out := *entry
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, classifyErr(err)
	}
	return &out, nil
}

// FindByID fetches a single entry by its identifier.
func (r *EntryPostgres) FindByID(ctx context.Context, id int64) (*model.Entry, error) {
	const q = `
		SELECT id, ` + entryColumns + `, created_at
		FROM entries
		WHERE id = $1
	`
	var e model.Entry
	if err := scanEntry(r.db.QueryRowContext(ctx, q, id), &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, classifyErr(err)
	}
	return &e, nil
}

// List returns entries using LIMIT/OFFSET pagination and a total count.
func (r *EntryPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Entry], error) {
	const qCount = `SELECT COUNT(*) FROM entries`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, classifyErr(err)
	}

	const qList = `
		SELECT id, ` + entryColumns + `, created_at
		FROM entries
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, classifyErr(err)
	}
	defer rows.Close()

	items := make([]model.Entry, 0)
	for rows.Next() {
		var e model.Entry
		if err := scanEntry(rows, &e); err != nil {
			return nil, classifyErr(err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr(err)
	}

	return &repository.PageResult[model.Entry]{Items: items, Total: total}, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner, e *model.Entry) error {
	var visualLinks sql.NullString
	err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.EmailAddress,
		&e.ContactNumber,
		&e.Capacity,
		&e.TeamMembers,
		&e.ChequeName,
		&e.ConsentDeclarations,
		&e.Challenge,
		&e.Insight,
		&e.StrategicIdea,
		&e.StrategyExecution,
		&e.ExpectedResults,
		&e.EntryTopic,
		&e.ConceptStrategy,
		&e.Objective,
		&e.Rationale,
		&e.Measurement,
		&e.InsightDescription,
		&e.StrategicSolution,
		&e.CreativePlan,
		&e.CommunicationStrategy,
		&e.ResultImpact,
		&e.WhyOutstanding,
		&e.ResultScope,
		&visualLinks,
		&e.CreatedAt,
	)
	if err != nil {
		return err
	}
	if visualLinks.Valid {
		e.VisualLinks = &visualLinks.String
	}
	return nil
}

// classifyErr maps raw driver errors onto the repository's error taxonomy.
// Undefined column/table indicates a stale table layout; everything else at
// this layer is treated as a transient store failure.
func classifyErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUndefinedColumn, codeUndefinedTable:
			return &repository.SchemaMismatchError{Code: pgErr.Code, Detail: pgErr.Message}
		}
	}
	return &repository.TransientError{Err: err}
}
