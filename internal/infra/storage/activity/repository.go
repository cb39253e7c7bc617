package activity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/dbmetrics"
	"github.com/soltours/booking-service/pkg/psqlbuilder"
	"github.com/soltours/booking-service/pkg/types"
)

var activityColumns = []string{
	"id",
	"slug",
	"title",
	"category",
	"location",
	"duration_minutes",
	"adult_price",
	"child_price",
	"senior_price",
	"max_participants",
	"time_slots",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога активностей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория активностей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает активность по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает активность по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Activity, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(activityColumns...).
		From("activities").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	activity, err := scanActivity(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan activity: %v", ErrScanRow, op, err)
	}

	return activity, nil
}

// List получает список активностей каталога с фильтрацией
func (r *Repository) List(ctx context.Context, filter domain.ActivitiesFilter) ([]*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(activityColumns...).
		From("activities").
		OrderBy("title ASC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	if !filter.IncludeHidden {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActivityActive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivityRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan activity: %v", ErrScanRow, err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return activities, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanActivity(row *sql.Row) (*domain.Activity, error) {
	return scanActivityFrom(row)
}

func scanActivityRows(rows *sql.Rows) (*domain.Activity, error) {
	return scanActivityFrom(rows)
}

func scanActivityFrom(scanner rowScanner) (*domain.Activity, error) {
	var activity domain.Activity
	var childPrice, seniorPrice decimal.NullDecimal
	var timeSlots pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := scanner.Scan(
		&activity.ID,
		&activity.Slug,
		&activity.Title,
		&activity.Category,
		&activity.Location,
		&activity.DurationMinutes,
		&activity.AdultPrice,
		&childPrice,
		&seniorPrice,
		&activity.MaxParticipants,
		&timeSlots,
		&activity.Status,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	if childPrice.Valid {
		activity.ChildPrice = &childPrice.Decimal
	}
	if seniorPrice.Valid {
		activity.SeniorPrice = &seniorPrice.Decimal
	}

	activity.TimeSlots = make([]types.TimeString, 0, len(timeSlots))
	for _, slot := range timeSlots {
		activity.TimeSlots = append(activity.TimeSlots, types.TimeString(slot))
	}

	activity.CreatedAt = createdAt.Time
	activity.UpdatedAt = updatedAt.Time

	return &activity, nil
}
