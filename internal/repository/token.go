package repository

import (
	"context"
	"time"

	"github.com/wares-dev/wares/internal/models"
	"gorm.io/gorm"
)

type TokenRepository struct {
	Base[models.Token]
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{Base: NewBase[models.Token](db)}
}

// Create records an issued token against its user. A nonexistent user
// surfaces as ErrConflict.
func (r *TokenRepository) Create(ctx context.Context, token string, userID uint, expiresAt time.Time) (*models.Token, error) {
	row := models.Token{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    userID,
	}

	if err := r.Base.Create(ctx, &row); err != nil {
		return nil, err
	}

	return &row, nil
}

// CountByUser returns the number of token rows held by the user.
func (r *TokenRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Token{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}

	return count, nil
}
