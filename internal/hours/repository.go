package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByWeekday(ctx context.Context, weekday int) (*BusinessHours, error)
	List(ctx context.Context) ([]*BusinessHours, error)
	Update(ctx context.Context, h *BusinessHours) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByWeekday(ctx context.Context, weekday int) (*BusinessHours, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "weekday", "opens_at", "closes_at", "is_open").
		From("public.business_hours").
		Where(squirrel.Eq{"weekday": weekday}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hours query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var h BusinessHours
	if err := row.Scan(&h.ID, &h.Weekday, &h.OpensAt, &h.ClosesAt, &h.IsOpen); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hours failed: %w", err)
	}
	return &h, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*BusinessHours, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("id", "weekday", "opens_at", "closes_at", "is_open").
		From("public.business_hours").
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list hours query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list hours failed: %w", err)
	}
	defer rows.Close()

	var result []*BusinessHours
	for rows.Next() {
		var h BusinessHours
		if err := rows.Scan(&h.ID, &h.Weekday, &h.OpensAt, &h.ClosesAt, &h.IsOpen); err != nil {
			return nil, fmt.Errorf("scan hours failed: %w", err)
		}
		result = append(result, &h)
	}

	return result, nil
}

func (r *pgxRepository) Update(ctx context.Context, h *BusinessHours) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.business_hours").
		Set("opens_at", h.OpensAt).
		Set("closes_at", h.ClosesAt).
		Set("is_open", h.IsOpen).
		Where(squirrel.Eq{"weekday": h.Weekday}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update hours query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update hours failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
