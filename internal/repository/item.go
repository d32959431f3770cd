package repository

import (
	"context"

	"github.com/wares-dev/wares/internal/models"
	"gorm.io/gorm"
)

type CreateItem struct {
	Title       string
	Description string
	OwnerID     uint
}

// UpdateItem carries partial updates. Nil fields are left untouched.
type UpdateItem struct {
	Title       *string
	Description *string
}

type ItemRepository struct {
	Base[models.Item]
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{Base: NewBase[models.Item](db)}
}

// Create persists the item. A nonexistent owner surfaces as ErrConflict.
func (r *ItemRepository) Create(ctx context.Context, in CreateItem) (*models.Item, error) {
	item := models.Item{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}

	if err := r.Base.Create(ctx, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *models.Item, in UpdateItem) (*models.Item, error) {
	updates := make(map[string]any)

	if in.Title != nil {
		updates["title"] = *in.Title
	}

	if in.Description != nil {
		updates["description"] = *in.Description
	}

	if err := r.Base.Update(ctx, item, updates); err != nil {
		return nil, err
	}

	return item, nil
}

// ListByOwner returns the owner's items with offset/limit pagination.
func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID uint, skip, limit int) ([]models.Item, error) {
	var items []models.Item

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Offset(skip).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}

	return items, nil
}
