package dao

import (
	"context"
	"fmt"

	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/repository/dao"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

var _ dao.UserRepository = (*GormUserRepository)(nil)

func (r *GormUserRepository) QueryByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select("id", "first_name", "last_name", "email_address", "created_at", "updated_at").
		Where("id = ?", id).
		First(&user).
		Error
	if err != nil {
		return model.User{}, fmt.Errorf("user query failed: %w", apperrors.WrapGormError(err, apperrors.ErrUserNotFound))
	}
	return user, nil
}

// QueryByEmail is the credential lookup; the match is exact, even where the
// column collation is case-insensitive.
func (r *GormUserRepository) QueryByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email_address = ?", email).
		First(&user).
		Error
	if err != nil {
		return model.User{}, fmt.Errorf("credential lookup failed: %w", apperrors.WrapGormError(err, apperrors.ErrUserNotFound))
	}
	if user.EmailAddress != email {
		return model.User{}, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *GormUserRepository) IsEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email_address = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", apperrors.WrapGormError(err, apperrors.ErrUserNotFound))
	}
	return count > 0, nil
}

func (r *GormUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.ErrDuplicateEntry
			}
			return fmt.Errorf("user creation failed: %w", apperrors.WrapGormError(err, apperrors.ErrUserNotFound))
		}
		return nil
	})
}
