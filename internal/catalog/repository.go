package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id string) (*Service, error)
	ListActive(ctx context.Context) ([]*Service, error)
	List(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, s *Service) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *Service) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.services").
		Columns("name", "description", "duration_minutes", "price", "active").
		Values(s.Name, s.Description, s.DurationMinutes, s.Price, s.Active).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create service query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "description", "duration_minutes", "price", "active", "created_at").
		From("public.services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get service query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var s Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.Active, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) ListActive(ctx context.Context) ([]*Service, error) {
	return r.list(ctx, true)
}

func (r *pgxRepository) List(ctx context.Context) ([]*Service, error) {
	return r.list(ctx, false)
}

func (r *pgxRepository) list(ctx context.Context, activeOnly bool) ([]*Service, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "name", "description", "duration_minutes", "price", "active", "created_at").
		From("public.services").
		OrderBy("created_at ASC")

	if activeOnly {
		query = query.Where(squirrel.Eq{"active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list services failed: %w", err)
	}
	defer rows.Close()

	var services []*Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.Active, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service failed: %w", err)
		}
		services = append(services, &s)
	}

	return services, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Service) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.services").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("duration_minutes", s.DurationMinutes).
		Set("price", s.Price).
		Set("active", s.Active).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update service query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
