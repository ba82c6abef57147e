package storage

import (
	"context"
	"fmt"

	"filmadviser/internal/domain/catalog"
	"filmadviser/internal/domain/ratings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert writes the user's rating for a title in one statement: insert, or
// on conflict with the (user_id, title_kind, title_id) index update the
// value in place. Concurrent submissions for the same pair cannot produce
// duplicate rows. The stored row is loaded back into rt.
func (r *RatingRepository) Upsert(ctx context.Context, rt *ratings.Rating) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "title_kind"}, {Name: "title_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(rt).Error
	if err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	// The conflict path reports the insert's id, not the surviving row's.
	return r.db.WithContext(ctx).
		Where("user_id = ? AND title_kind = ? AND title_id = ?", rt.UserID, rt.TitleKind, rt.TitleID).
		First(rt).Error
}

func (r *RatingRepository) ForUser(ctx context.Context, userID uint) ([]ratings.Rating, error) {
	list := make([]ratings.Rating, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for user %d: %w", userID, err)
	}
	return list, nil
}

func (r *RatingRepository) ForTitle(ctx context.Context, kind catalog.Kind, titleID uint) ([]ratings.Rating, error) {
	list := make([]ratings.Rating, 0)
	err := r.db.WithContext(ctx).
		Where("title_kind = ? AND title_id = ?", kind, titleID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for %s %d: %w", kind, titleID, err)
	}
	return list, nil
}

func (r *RatingRepository) List(ctx context.Context) ([]ratings.Rating, error) {
	list := make([]ratings.Rating, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return list, nil
}
