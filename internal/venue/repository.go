package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.venues").
		Columns("name", "category", "capacity", "location", "venue_type", "image", "equipment", "is_blocked").
		Values(v.Name, v.Category, v.Capacity, v.Location, v.VenueType, v.Image, v.Equipment, v.IsBlocked).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create venue query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "category", "capacity", "location", "venue_type",
		"image", "equipment", "is_blocked", "created_at", "updated_at",
	).
		From("public.venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get venue query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var v Venue
	if err := row.Scan(
		&v.ID, &v.Name, &v.Category, &v.Capacity, &v.Location, &v.VenueType,
		&v.Image, &v.Equipment, &v.IsBlocked, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "category", "capacity", "location", "venue_type",
		"image", "equipment", "is_blocked", "created_at", "updated_at",
		"count(*) OVER() AS total_count",
	).
		From("public.venues")

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}

	query = query.OrderBy("name ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list venues query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []*Venue
	var total int

	for rows.Next() {
		var v Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.Capacity, &v.Location, &v.VenueType,
			&v.Image, &v.Equipment, &v.IsBlocked, &v.CreatedAt, &v.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		venues = append(venues, &v)
	}

	return venues, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, v *Venue) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.venues").
		Set("name", v.Name).
		Set("category", v.Category).
		Set("capacity", v.Capacity).
		Set("location", v.Location).
		Set("venue_type", v.VenueType).
		Set("image", v.Image).
		Set("equipment", v.Equipment).
		Set("is_blocked", v.IsBlocked).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update venue query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
