package barber

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Barber) error
	GetByID(ctx context.Context, id string) (*Barber, error)

	// ListActive returns the active barbers in ascending id order.
	// The ordering is the tie-breaker for first-fit assignment, so it must be stable.
	ListActive(ctx context.Context) ([]*Barber, error)

	List(ctx context.Context) ([]*Barber, error)
	Update(ctx context.Context, b *Barber) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Barber) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.barbers").
		Columns("name", "active").
		Values(b.Name, b.Active).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create barber query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Barber, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "active", "created_at").
		From("public.barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get barber query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Barber
	if err := row.Scan(&b.ID, &b.Name, &b.Active, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get barber failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) ListActive(ctx context.Context) ([]*Barber, error) {
	return r.list(ctx, true)
}

func (r *pgxRepository) List(ctx context.Context) ([]*Barber, error) {
	return r.list(ctx, false)
}

func (r *pgxRepository) list(ctx context.Context, activeOnly bool) ([]*Barber, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "name", "active", "created_at").
		From("public.barbers").
		OrderBy("id ASC")

	if activeOnly {
		query = query.Where(squirrel.Eq{"active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list barbers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list barbers failed: %w", err)
	}
	defer rows.Close()

	var barbers []*Barber
	for rows.Next() {
		var b Barber
		if err := rows.Scan(&b.ID, &b.Name, &b.Active, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan barber failed: %w", err)
		}
		barbers = append(barbers, &b)
	}

	return barbers, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Barber) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.barbers").
		Set("name", b.Name).
		Set("active", b.Active).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update barber query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update barber failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
