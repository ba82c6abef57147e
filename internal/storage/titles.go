// Package storage provides the data access layer: one repository per
// entity kind over an injected gorm handle.
package storage

import (
	"context"
	"errors"
	"fmt"

	"filmadviser/internal/domain/catalog"

	"gorm.io/gorm"
)

// TitleRepository handles one of the two title tables; the kind fixes the
// table at construction time so movie and serial catalogs never mix.
type TitleRepository struct {
	db   *gorm.DB
	kind catalog.Kind
}

func NewTitleRepository(db *gorm.DB, kind catalog.Kind) *TitleRepository {
	return &TitleRepository{db: db, kind: kind}
}

func (r *TitleRepository) Kind() catalog.Kind { return r.kind }

func (r *TitleRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.kind.Table())
}

func (r *TitleRepository) List(ctx context.Context) ([]catalog.Title, error) {
	titles := make([]catalog.Title, 0)
	if err := r.table(ctx).Order("id ASC").Find(&titles).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.kind.Table(), err)
	}
	return titles, nil
}

func (r *TitleRepository) Get(ctx context.Context, id uint) (catalog.Title, error) {
	var t catalog.Title
	err := r.table(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Title{}, ErrNotFound
		}
		return catalog.Title{}, fmt.Errorf("failed to get %s %d: %w", r.kind, id, err)
	}
	return t, nil
}

func (r *TitleRepository) Create(ctx context.Context, t *catalog.Title) error {
	if err := r.table(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	return nil
}

// Replace overwrites every column with the supplied values (PUT semantics):
// fields absent from the request arrive as zero values and are written as
// such, not retained.
func (r *TitleRepository) Replace(ctx context.Context, id uint, t catalog.Title) (catalog.Title, error) {
	updates := map[string]interface{}{
		"title":           t.Title,
		"description":     t.Description,
		"poster_url":      t.PosterURL,
		"rating":          t.Rating,
		"production_year": t.ProductionYear,
		"duration":        t.Duration,
		"country":         t.Country,
		"genre":           t.Genre,
		"director":        t.Director,
		"age_rating":      t.AgeRating,
		"main_roles":      t.MainRoles,
	}
	return r.update(ctx, id, updates)
}

// Merge changes only the supplied columns (PATCH semantics).
func (r *TitleRepository) Merge(ctx context.Context, id uint, updates map[string]interface{}) (catalog.Title, error) {
	return r.update(ctx, id, updates)
}

func (r *TitleRepository) update(ctx context.Context, id uint, updates map[string]interface{}) (catalog.Title, error) {
	var t catalog.Title
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(r.kind.Table()).First(&t, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Table(r.kind.Table()).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Table(r.kind.Table()).First(&t, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Title{}, ErrNotFound
		}
		return catalog.Title{}, fmt.Errorf("failed to update %s %d: %w", r.kind, id, err)
	}
	return t, nil
}

func (r *TitleRepository) Delete(ctx context.Context, id uint) error {
	res := r.table(ctx).Where("id = ?", id).Delete(&catalog.Title{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s %d: %w", r.kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
