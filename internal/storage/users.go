package storage

import (
	"context"
	"errors"
	"fmt"

	"filmadviser/internal/domain/users"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Username uniqueness is a database constraint,
// so two concurrent registrations cannot both succeed; the loser gets
// ErrAlreadyExists. Requires gorm's TranslateError to be enabled on the
// handle.
func (r *UserRepository) Create(ctx context.Context, u *users.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) ByUsername(ctx context.Context, username string) (users.User, error) {
	var u users.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return users.User{}, ErrNotFound
		}
		return users.User{}, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	return u, nil
}

func (r *UserRepository) ByID(ctx context.Context, id uint) (users.User, error) {
	var u users.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return users.User{}, ErrNotFound
		}
		return users.User{}, fmt.Errorf("failed to look up user %d: %w", id, err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]users.User, error) {
	list := make([]users.User, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}
