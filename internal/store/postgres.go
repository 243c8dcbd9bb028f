package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements ActivityStore backed by a pgxpool connection.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and verifies connectivity.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Pool returns the underlying pgxpool for schema migrations.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Append records one activity entry.
func (s *PostgresStore) Append(ctx context.Context, e ActivityEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	const q = `
INSERT INTO activity_log (id, agent_id, agent_name, kind, tool, status, message, duration_ms, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`
	_, err := s.pool.Exec(ctx, q,
		e.ID, e.AgentID, e.AgentName, e.Kind, e.Tool, e.Status, e.Message, e.DurationMs, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

// List returns entries newest-first, up to limit (0 means all).
func (s *PostgresStore) List(ctx context.Context, limit int) ([]ActivityEntry, error) {
	q := `
SELECT id, agent_id, agent_name, kind, COALESCE(tool, ''), status, message, duration_ms, created_at
FROM activity_log ORDER BY created_at DESC
`
	args := []any{}
	if limit > 0 {
		q += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var out []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		if err := rows.Scan(&e.ID, &e.AgentID, &e.AgentName, &e.Kind, &e.Tool, &e.Status, &e.Message, &e.DurationMs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Summary aggregates entries recorded at or after since.
func (s *PostgresStore) Summary(ctx context.Context, since time.Time) (*Summary, error) {
	summary := &Summary{}

	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0)
		FROM activity_log WHERE created_at >= $1
	`, since).Scan(&summary.TotalRuns, &summary.Successes, &summary.Errors)
	if err != nil {
		return nil, fmt.Errorf("summary totals: %w", err)
	}
	if finished := summary.Successes + summary.Errors; finished > 0 {
		summary.SuccessRate = float64(summary.Successes) / float64(finished)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT agent_id, MAX(agent_name), COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(duration_ms), 0)
		FROM activity_log WHERE created_at >= $1
		GROUP BY agent_id ORDER BY COUNT(*) DESC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("summary by agent: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a AgentRunSummary
		if err := rows.Scan(&a.AgentID, &a.AgentName, &a.Runs, &a.Errors, &a.AvgDurationMs); err != nil {
			return nil, fmt.Errorf("scan agent summary: %w", err)
		}
		summary.ByAgent = append(summary.ByAgent, a)
	}
	return summary, rows.Err()
}
