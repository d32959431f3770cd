package repository

import (
	"context"

	"gorm.io/gorm"
)

// Base implements the persistence operations shared by every entity
// repository. Entity repositories embed it and layer model mapping (and, for
// users, password hashing) on top.
type Base[M any] struct {
	db *gorm.DB
}

func NewBase[M any](db *gorm.DB) Base[M] {
	return Base[M]{db: db}
}

// Get returns the row with the given primary key, or ErrNotFound.
func (r Base[M]) Get(ctx context.Context, id uint) (*M, error) {
	var entity M

	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, translate(err)
	}

	return &entity, nil
}

// List returns up to limit rows starting at offset skip, in store order.
func (r Base[M]) List(ctx context.Context, skip, limit int) ([]M, error) {
	var entities []M

	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&entities).Error; err != nil {
		return nil, translate(err)
	}

	return entities, nil
}

// Create persists entity and fills in its generated id and timestamps.
func (r Base[M]) Create(ctx context.Context, entity *M) error {
	return translate(r.db.WithContext(ctx).Create(entity).Error)
}

// Update applies only the given fields to entity and refreshes it. Fields
// absent from the map are left untouched. A nil or empty map is a no-op.
func (r Base[M]) Update(ctx context.Context, entity *M, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	return translate(r.db.WithContext(ctx).Model(entity).Updates(fields).Error)
}

// Remove deletes the row with the given primary key and returns its
// pre-deletion snapshot, or ErrNotFound. Load and delete run in one
// transaction; dependent rows go with it per the schema's cascade rules.
func (r Base[M]) Remove(ctx context.Context, id uint) (*M, error) {
	var entity M

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entity, id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return &entity, nil
}
