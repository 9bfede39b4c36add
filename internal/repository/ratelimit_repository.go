package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// RateLimitRepository persists submission bookkeeping rows keyed by IP hash.
type RateLimitRepository struct {
	db *sqlx.DB
}

// NewRateLimitRepository creates the repository.
func NewRateLimitRepository(db *sqlx.DB) *RateLimitRepository {
	return &RateLimitRepository{db: db}
}

// CountSince returns how many submissions the hash made at or after the cutoff.
func (r *RateLimitRepository) CountSince(ctx context.Context, ipHash string, since time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM submission_rate_limits WHERE ip_hash = $1 AND submitted_at >= $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, ipHash, since); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return count, nil
}

// Record inserts a submission entry for the hash.
func (r *RateLimitRepository) Record(ctx context.Context, ipHash string, submittedAt time.Time) error {
	const query = `INSERT INTO submission_rate_limits (ip_hash, submitted_at) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, ipHash, submittedAt); err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	return nil
}

// PurgeBefore deletes entries older than the cutoff. Housekeeping runs eagerly
// on every intake request rather than in a background sweeper.
func (r *RateLimitRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM submission_rate_limits WHERE submitted_at < $1`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}
	return deleted, nil
}
