package repository

import (
	"context"
	"strings"

	apperrors "hotel-booking/errors"
	"hotel-booking/models"

	"gorm.io/gorm"
)

type UserFilter struct {
	RoleID int
	Search string
	Page
}

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.conn(ctx).Create(user).Error
}

func (r *Repository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.conn(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeUserNotFound, "User not found")
	}
	return &user, nil
}

func (r *Repository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.User{}).Where("LOWER(email) = ?", strings.ToLower(email)).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListUsers(ctx context.Context, f UserFilter) ([]models.User, int64, error) {
	q := r.conn(ctx).Model(&models.User{})
	if f.RoleID != 0 {
		q = q.Where("role_id = ?", f.RoleID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := f.Page.apply(q).Order("id").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *Repository) UpdateUserRole(ctx context.Context, id uint, roleID int) error {
	return r.conn(ctx).Model(&models.User{}).Where("id = ?", id).Update("role_id", roleID).Error
}

func (r *Repository) DeleteUser(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&models.User{}, id).Error
}
