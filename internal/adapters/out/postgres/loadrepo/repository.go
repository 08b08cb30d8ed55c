package loadrepo

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const newestFirst = "posted_at DESC, id"

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db *gorm.DB
}

// NewGormLoadRepository creates a repository on db, which may be a transaction.
func NewGormLoadRepository(db *gorm.DB) *GormLoadRepository {
	return &GormLoadRepository{db: db}
}

// Add saves a newly posted load.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// CompareAndSwap issues a single conditional UPDATE keyed on id and the expected
// status. Zero affected rows means either the load is missing or another writer
// moved it first; a follow-up existence check tells the two apart.
func (r *GormLoadRepository) CompareAndSwap(ctx context.Context, aggregate *load.Load, expected load.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&LoadDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("load", aggregate.ID().String())
	}

	return errs.ErrPreconditionFailed
}

// Claim updates a POSTED row only if no other row holds the assignee in an
// active-job status. Two claims by one trucker racing in separate transactions
// both pass the NOT EXISTS check; the partial unique index created by Migrate
// rejects the later one.
func (r *GormLoadRepository) Claim(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Status() != load.Matched || aggregate.AssignedTo() == nil {
		return errs.NewValueIsInvalidError("claimed load must be MATCHED with an assignee")
	}

	dto := fromDomain(aggregate)
	busy := r.db.
		Model(&LoadDTO{}).
		Select("1").
		Where("assigned_to = ? AND status = ANY(?)", *dto.AssignedTo, statusArray(load.ActiveJobStatuses()))

	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(load.Posted)).
		Where("NOT EXISTS (?)", busy).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 1 {
		return nil
	}

	stored, err := r.Get(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if stored.Status() != load.Posted {
		return errs.ErrPreconditionFailed
	}

	return errs.ErrAssigneeHasActiveJob
}

// Get retrieves a load by ID.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByPoster retrieves every load the business posted.
func (r *GormLoadRepository) ListByPoster(ctx context.Context, businessID kernel.UUID) ([]*load.Load, error) {
	if err := businessID.Validate(); err != nil {
		return nil, err
	}

	return r.find(r.db.WithContext(ctx).Where("posted_by = ?", businessID.Bytes()))
}

// ListAvailable retrieves POSTED loads matching the capability. The vehicle type
// is compared case-insensitively and the weight must not exceed the capacity.
func (r *GormLoadRepository) ListAvailable(ctx context.Context, capability load.Capability) ([]*load.Load, error) {
	query := r.db.WithContext(ctx).Where("status = ?", int(load.Posted))

	if vehicleType := capability.VehicleType(); vehicleType != "" {
		query = query.Where("LOWER(vehicle_type) = LOWER(?)", vehicleType)
	}
	if capacity, ok := capability.Capacity(); ok {
		query = query.Where("weight <= ?", capacity)
	}

	return r.find(query)
}

// ListByAssignee retrieves every load recording the trucker as assignee.
func (r *GormLoadRepository) ListByAssignee(ctx context.Context, truckerID kernel.UUID) ([]*load.Load, error) {
	if err := truckerID.Validate(); err != nil {
		return nil, err
	}

	return r.find(r.db.WithContext(ctx).Where("assigned_to = ?", truckerID.Bytes()))
}

// HasActiveByAssignee reports whether the trucker holds a load in an active-job status.
func (r *GormLoadRepository) HasActiveByAssignee(ctx context.Context, truckerID kernel.UUID) (bool, error) {
	if err := truckerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("assigned_to = ? AND status = ANY(?)", truckerID.Bytes(), statusArray(load.ActiveJobStatuses())).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountByStatus aggregates the table in one pass.
func (r *GormLoadRepository) CountByStatus(ctx context.Context) (map[load.Status]int, error) {
	counts := make(map[load.Status]int, len(load.AllStatuses()))
	for _, s := range load.AllStatuses() {
		counts[s] = 0
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM loads
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[load.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *GormLoadRepository) find(query *gorm.DB) ([]*load.Load, error) {
	var dtos []LoadDTO
	if err := query.Order(newestFirst).Find(&dtos).Error; err != nil {
		return nil, err
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	return loads, nil
}

func statusArray(statuses []load.Status) any {
	values := make([]int64, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int64(s))
	}
	return pq.Array(values)
}
