package appointment

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
	// Create inserts a confirmed appointment. The appointments table has an
	// exclusion constraint over (barber_id, time range) for non-cancelled
	// rows, so a concurrent booking for the same barber and overlapping
	// interval fails here with ErrSlotTaken even if it passed the pre-check.
	Create(ctx context.Context, a *Appointment) error

	GetByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter Filter) ([]*Appointment, int, error)

	// ListOverlapping returns non-cancelled appointments intersecting
	// [start, end), optionally restricted to one barber.
	ListOverlapping(ctx context.Context, start, end time.Time, barberID string) ([]*Appointment, error)

	// CountFutureConfirmedByPhone counts confirmed appointments starting
	// after the given instant for the customer's phone number.
	CountFutureConfirmedByPhone(ctx context.Context, phone string, after time.Time) (int, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, a *Appointment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.appointments").
		Columns("customer_name", "customer_phone", "customer_email", "service_id", "barber_id", "starts_at", "ends_at", "status", "notes").
		Values(a.CustomerName, a.CustomerPhone, a.CustomerEmail, a.ServiceID, a.BarberID, a.StartsAt, a.EndsAt, a.Status, a.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create appointment query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create appointment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"a.id", "a.customer_name", "a.customer_phone", "a.customer_email",
		"a.service_id", "s.name", "a.barber_id", "b.name",
		"a.starts_at", "a.ends_at", "a.status", "a.notes", "a.created_at",
	).
		From("public.appointments a").
		Join("public.services s ON a.service_id = s.id").
		Join("public.barbers b ON a.barber_id = b.id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get appointment query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var a Appointment
	if err := row.Scan(
		&a.ID, &a.CustomerName, &a.CustomerPhone, &a.CustomerEmail,
		&a.ServiceID, &a.ServiceName, &a.BarberID, &a.BarberName,
		&a.StartsAt, &a.EndsAt, &a.Status, &a.Notes, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Appointment, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"a.id", "a.customer_name", "a.customer_phone", "a.customer_email",
		"a.service_id", "s.name", "a.barber_id", "b.name",
		"a.starts_at", "a.ends_at", "a.status", "a.notes", "a.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.appointments a").
		Join("public.services s ON a.service_id = s.id").
		Join("public.barbers b ON a.barber_id = b.id")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"a.status": filter.Status})
	}
	if filter.BarberID != "" {
		query = query.Where(squirrel.Eq{"a.barber_id": filter.BarberID})
	}
	if filter.StartFrom != nil {
		query = query.Where(squirrel.GtOrEq{"a.starts_at": filter.StartFrom})
	}
	if filter.StartTo != nil {
		query = query.Where(squirrel.LtOrEq{"a.starts_at": filter.StartTo})
	}

	query = query.OrderBy("a.starts_at DESC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list appointments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments failed: %w", err)
	}
	defer rows.Close()

	var appointments []*Appointment
	var total int

	for rows.Next() {
		var a Appointment
		if err := rows.Scan(
			&a.ID, &a.CustomerName, &a.CustomerPhone, &a.CustomerEmail,
			&a.ServiceID, &a.ServiceName, &a.BarberID, &a.BarberName,
			&a.StartsAt, &a.EndsAt, &a.Status, &a.Notes, &a.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan appointment failed: %w", err)
		}
		appointments = append(appointments, &a)
	}

	return appointments, total, nil
}

func (r *pgxRepository) ListOverlapping(ctx context.Context, start, end time.Time, barberID string) ([]*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "customer_name", "customer_phone", "customer_email",
		"service_id", "barber_id", "starts_at", "ends_at", "status", "notes", "created_at",
	).
		From("public.appointments").
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.Lt{"starts_at": end}).
		Where(squirrel.Gt{"ends_at": start})

	if barberID != "" {
		query = query.Where(squirrel.Eq{"barber_id": barberID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list overlapping query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list overlapping appointments failed: %w", err)
	}
	defer rows.Close()

	var appointments []*Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(
			&a.ID, &a.CustomerName, &a.CustomerPhone, &a.CustomerEmail,
			&a.ServiceID, &a.BarberID, &a.StartsAt, &a.EndsAt, &a.Status, &a.Notes, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment failed: %w", err)
		}
		appointments = append(appointments, &a)
	}

	return appointments, nil
}

func (r *pgxRepository) CountFutureConfirmedByPhone(ctx context.Context, phone string, after time.Time) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("count(*)").
		From("public.appointments").
		Where(squirrel.Eq{"customer_phone": phone}).
		Where(squirrel.Eq{"status": StatusConfirmed}).
		Where(squirrel.Gt{"starts_at": after}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count by phone query failed: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count appointments by phone failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update appointment status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete appointment query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete appointment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
