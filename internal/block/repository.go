package block

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Block) error
	GetByID(ctx context.Context, id string) (*Block, error)
	List(ctx context.Context) ([]*Block, error)

	// ListOverlapping returns blocks intersecting [start, end) using the
	// half-open test: starts_at < end AND ends_at > start.
	ListOverlapping(ctx context.Context, start, end time.Time) ([]*Block, error)

	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Block) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.schedule_blocks").
		Columns("starts_at", "ends_at", "reason", "barber_id").
		Values(b.StartsAt, b.EndsAt, b.Reason, b.BarberID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create block query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Block, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "starts_at", "ends_at", "reason", "barber_id", "created_at").
		From("public.schedule_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get block query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Block
	if err := row.Scan(&b.ID, &b.StartsAt, &b.EndsAt, &b.Reason, &b.BarberID, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get block failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Block, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("id", "starts_at", "ends_at", "reason", "barber_id", "created_at").
		From("public.schedule_blocks").
		OrderBy("starts_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list blocks query failed: %w", err)
	}

	return r.queryBlocks(ctx, sql, args)
}

func (r *pgxRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]*Block, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("id", "starts_at", "ends_at", "reason", "barber_id", "created_at").
		From("public.schedule_blocks").
		Where(squirrel.Lt{"starts_at": end}).
		Where(squirrel.Gt{"ends_at": start}).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list overlapping blocks query failed: %w", err)
	}

	return r.queryBlocks(ctx, sql, args)
}

func (r *pgxRepository) queryBlocks(ctx context.Context, sql string, args []interface{}) ([]*Block, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list blocks failed: %w", err)
	}
	defer rows.Close()

	var blocks []*Block
	for rows.Next() {
		var b Block
		if err := rows.Scan(&b.ID, &b.StartsAt, &b.EndsAt, &b.Reason, &b.BarberID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan block failed: %w", err)
		}
		blocks = append(blocks, &b)
	}

	return blocks, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.schedule_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete block query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete block failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
