package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// ListForVenueDate returns every booking of a venue on a date, all
	// statuses included; the availability engine filters by status itself.
	ListForVenueDate(ctx context.Context, venueID, date string) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ApproveIfFree transitions the booking to APPROVED only while it is still
	// PENDING and no APPROVED booking for the same venue and date overlaps it.
	// Check and transition happen in a single statement, so two concurrent
	// approvals of overlapping requests cannot both find the slot free. It
	// reports whether the transition happened.
	ApproveIfFree(ctx context.Context, id string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"venue_id", "user_id", "title", "description", "booking_date",
			"start_time", "end_time", "full_day", "status", "equipment_required", "attendees",
		).
		Values(
			b.VenueID, b.UserID, b.Title, b.Description, b.Date,
			b.StartTime, b.EndTime, b.FullDay, b.Status, b.EquipmentRequired, b.Attendees,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func bookingSelect() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.venue_id", "v.name", "b.user_id", "u.name",
		"b.title", "b.description", "b.booking_date", "b.start_time", "b.end_time",
		"b.full_day", "b.status", "b.equipment_required", "b.attendees",
		"b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.venues v ON b.venue_id = v.id").
		Join("public.users u ON b.user_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.VenueID, &b.VenueName, &b.UserID, &b.UserName,
		&b.Title, &b.Description, &b.Date, &b.StartTime, &b.EndTime,
		&b.FullDay, &b.Status, &b.EquipmentRequired, &b.Attendees,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := bookingSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	query := bookingSelect().Column("count(*) OVER() AS total_count")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"b.venue_id": filter.VenueID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.Date != "" {
		query = query.Where(squirrel.Eq{"b.booking_date": filter.Date})
	}

	// created_at is the history ordering key; newest requests first.
	orderBy := "b.created_at"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}

	query = query.OrderBy(orderBy + " " + orderDir)

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.VenueID, &b.VenueName, &b.UserID, &b.UserName,
			&b.Title, &b.Description, &b.Date, &b.StartTime, &b.EndTime,
			&b.FullDay, &b.Status, &b.EquipmentRequired, &b.Attendees,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForVenueDate(ctx context.Context, venueID, date string) ([]*Booking, error) {
	query, args, err := bookingSelect().
		Where(squirrel.Eq{"b.venue_id": venueID}).
		Where(squirrel.Eq{"b.booking_date": date}).
		OrderBy("b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list venue date query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings for venue date failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ApproveIfFree(ctx context.Context, id string) (bool, error) {
	// The overlap predicate is correlated against the row being approved, so
	// the PENDING guard and the conflict check hold at the moment the status
	// flips. Fixed-width HH:MM strings compare correctly in SQL, matching the
	// half-open semantics of the availability engine; a full-day record on
	// either side collides with anything on the day.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings AS b").
		Set("status", StatusApproved).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"b.id": id}).
		Where(squirrel.Eq{"b.status": StatusPending}).
		Where(squirrel.Expr(`NOT EXISTS (
			SELECT 1 FROM public.bookings o
			WHERE o.venue_id = b.venue_id
			  AND o.booking_date = b.booking_date
			  AND o.status = ?
			  AND o.id <> b.id
			  AND (o.full_day OR b.full_day OR (o.start_time < b.end_time AND o.end_time > b.start_time))
		)`, StatusApproved)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build approve booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("approve booking failed: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}
