package repository

import (
	"context"
	"errors"

	"go-resto-admin/internal/model"

	"gorm.io/gorm"
)

var ErrAboutNotFound = errors.New("about us content not found")

type AboutRepository interface {
	Get(ctx context.Context) (*model.AboutUs, error)
	Save(ctx context.Context, about *model.AboutUs) error
}

type aboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) AboutRepository {
	return &aboutRepo{db}
}

func (r *aboutRepo) Get(ctx context.Context) (*model.AboutUs, error) {
	var about model.AboutUs
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, err
	}
	return &about, nil
}

// Save updates the existing row in place, or creates the first one.
func (r *aboutRepo) Save(ctx context.Context, about *model.AboutUs) error {
	existing, err := r.Get(ctx)
	if errors.Is(err, ErrAboutNotFound) {
		return r.db.WithContext(ctx).Create(about).Error
	}
	if err != nil {
		return err
	}
	about.ID = existing.ID
	about.CreatedAt = existing.CreatedAt
	about.CreatedBy = existing.CreatedBy
	return r.db.WithContext(ctx).Save(about).Error
}
