package repository

import (
	"context"

	"gorm.io/gorm"

	"motohub/internal/model"
)

// AdminUserRepository defines admin credential persistence operations.
type AdminUserRepository interface {
	Create(ctx context.Context, user *model.AdminUser) error
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository.
func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

// Create creates a new admin user.
func (r *adminUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByUsername finds an admin user by exact username match.
func (r *adminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the number of admin credential rows.
func (r *adminUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
