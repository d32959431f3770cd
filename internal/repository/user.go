package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/wares-dev/wares/internal/auth"
	"github.com/wares-dev/wares/internal/models"
	"gorm.io/gorm"
)

// CreateUser is the input for registering a user. IsActive defaults to true
// when nil.
type CreateUser struct {
	Email       string
	Password    string
	FullName    string
	IsActive    *bool
	IsSuperuser bool
}

// UpdateUser carries partial updates. Nil fields are left untouched. An
// explicitly empty password is ignored rather than hashed.
type UpdateUser struct {
	Email       *string
	Password    *string
	FullName    *string
	IsActive    *bool
	IsSuperuser *bool
}

type UserRepository struct {
	Base[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Base: NewBase[models.User](db)}
}

// GetByEmail returns the user with the given email, or ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// Create hashes the password and persists the user. The plaintext never
// reaches the store. A duplicate email surfaces as ErrConflict.
func (r *UserRepository) Create(ctx context.Context, in CreateUser) (*models.User, error) {
	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          normalizeEmail(in.Email),
		HashedPassword: hashed,
		FullName:       in.FullName,
		IsActive:       in.IsActive == nil || *in.IsActive,
		IsSuperuser:    in.IsSuperuser,
	}

	if err := r.Base.Create(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Update applies the supplied fields to user. A new password is re-hashed
// if and only if it is non-empty; the stored digest is otherwise untouched.
func (r *UserRepository) Update(ctx context.Context, user *models.User, in UpdateUser) (*models.User, error) {
	updates := make(map[string]any)

	if in.Email != nil {
		updates["email"] = normalizeEmail(*in.Email)
	}

	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}

	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if in.IsSuperuser != nil {
		updates["is_superuser"] = *in.IsSuperuser
	}

	if in.Password != nil && *in.Password != "" {
		hashed, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		updates["hashed_password"] = hashed
	}

	if err := r.Base.Update(ctx, user, updates); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate resolves email and checks the password against the stored
// digest. Unknown email and wrong password both yield ErrInvalidCredentials.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
