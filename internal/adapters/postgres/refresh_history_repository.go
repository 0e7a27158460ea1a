package postgres

import (
	"context"
	"fmt"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RefreshHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewRefreshHistoryRepository(pool *pgxpool.Pool) *RefreshHistoryRepository {
	return &RefreshHistoryRepository{pool: pool}
}

func (r *RefreshHistoryRepository) Record(ctx context.Context, rec domain.RefreshRecord) error {
	const q = `
		insert into refresh_history
			(exec_id, started_at, finished_at, status, stage, coin_count, degraded, error_message)
		values ($1, $2, $3, $4, $5, $6, $7, nullif($8, ''));
	`

	_, err := r.pool.Exec(ctx, q,
		rec.ExecID, rec.StartedAt, rec.FinishedAt, string(rec.Status),
		rec.Stage, rec.CoinCount, rec.Degraded, rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to record refresh %s: %w", rec.ExecID, err)
	}
	return nil
}

func (r *RefreshHistoryRepository) Latest(ctx context.Context, limit int) ([]domain.RefreshRecord, error) {
	const q = `
		select exec_id, started_at, finished_at, status, stage, coin_count, degraded, coalesce(error_message, '')
		from refresh_history
		order by finished_at desc
		limit $1;
	`

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query refresh history: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RefreshRecord, 0, limit)
	for rows.Next() {
		var rec domain.RefreshRecord
		var status string
		if err = rows.Scan(&rec.ExecID, &rec.StartedAt, &rec.FinishedAt, &status,
			&rec.Stage, &rec.CoinCount, &rec.Degraded, &rec.ErrorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan refresh record: %w", err)
		}
		rec.Status = domain.RefreshStatus(status)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating refresh history: %w", err)
	}
	return records, nil
}
