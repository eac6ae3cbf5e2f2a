package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Staff, error)
	GetByID(ctx context.Context, id string) (*Staff, error)
	Create(ctx context.Context, s *Staff) error
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByUsername(ctx context.Context, username string) (*Staff, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "username", "password_hash", "display_name", "created_at", "last_login_at").
		From("public.staff").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get staff query failed: %w", err)
	}

	return r.scanOne(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Staff, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "username", "password_hash", "display_name", "created_at", "last_login_at").
		From("public.staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get staff query failed: %w", err)
	}

	return r.scanOne(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) scanOne(row pgx.Row) (*Staff, error) {
	var s Staff
	if err := row.Scan(&s.ID, &s.Username, &s.PasswordHash, &s.DisplayName, &s.CreatedAt, &s.LastLoginAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get staff failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) Create(ctx context.Context, s *Staff) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.staff").
		Columns("username", "password_hash", "display_name").
		Values(s.Username, s.PasswordHash, s.DisplayName).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create staff query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create staff failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.staff").
		Set("last_login_at", t).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update last login query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	return nil
}
