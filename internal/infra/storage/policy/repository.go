package policy

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/dbmetrics"
	"github.com/soltours/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий политик отмены
// Политика хранится одной строкой: tiers - JSONB массив, упорядоченный
// от самого щедрого порога вниз
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWithHierarchy получает политику с учетом иерархии приоритетов:
// строка с activity_id перекрывает глобальную (activity_id IS NULL)
// Если activityID == nil, возвращается глобальная политика
func (r *Repository) GetWithHierarchy(ctx context.Context, activityID *int64) (*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"activity_id",
		"tiers",
		"modification_fee",
		"created_at",
		"updated_at",
	).
		From("cancellation_policies")

	if activityID != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Or{
				squirrel.Eq{"activity_id": *activityID},
				squirrel.Eq{"activity_id": nil},
			}).
			// Специфичная для активности строка первая
			OrderBy("activity_id NULLS LAST")
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"activity_id": nil})
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithHierarchy - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.CancellationPolicy
	var tiersRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ActivityID,
		&tiersRaw,
		&p.ModificationFee,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithHierarchy - scan policy: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(tiersRaw, &p.Tiers); err != nil {
		return nil, fmt.Errorf("%w: GetWithHierarchy - decode tiers: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Upsert создает или обновляет политику для активности (nil = глобальная)
func (r *Repository) Upsert(ctx context.Context, p *domain.CancellationPolicy) (*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	tiersRaw, err := json.Marshal(p.Tiers)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode tiers: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("cancellation_policies").
		Columns("activity_id", "tiers", "modification_fee").
		Values(p.ActivityID, tiersRaw, p.ModificationFee).
		Suffix("ON CONFLICT (activity_id) DO UPDATE SET tiers = EXCLUDED.tiers, modification_fee = EXCLUDED.modification_fee, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}
