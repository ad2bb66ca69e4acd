package repository

import (
	"context"
	"errors"
	"time"

	"go-resto-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuFilter narrows FindAll. Zero values mean "no filter".
type MenuFilter struct {
	Category      model.MenuCategory
	AvailableOnly bool
}

// MenuStats untuk overview dashboard
type MenuStats struct {
	TotalItems     int64 `json:"total_items"`
	AvailableCount int64 `json:"available_count"`
	SoldOutCount   int64 `json:"sold_out_count"`
	BestSellers    int64 `json:"best_sellers"`
	FoodCount      int64 `json:"food_count"`
	BeverageCount  int64 `json:"beverage_count"`
}

type MenuItemRepository interface {
	FindAll(ctx context.Context, filter MenuFilter) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	// FindByName matches case-insensitively and exactly; returns nil, nil when nothing matches.
	FindByName(ctx context.Context, name string) (*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, item *model.MenuItem) error
	UpdateSyncFields(ctx context.Context, id uuid.UUID, price int64, available bool, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*MenuStats, error)
}

type menuItemRepo struct {
	db *gorm.DB
}

func NewMenuItemRepo(db *gorm.DB) MenuItemRepository {
	return &menuItemRepo{db}
}

func (r *menuItemRepo) FindAll(ctx context.Context, filter MenuFilter) ([]model.MenuItem, error) {
	var items []model.MenuItem
	q := r.db.WithContext(ctx).Model(&model.MenuItem{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.AvailableOnly {
		q = q.Where("available = ?", true)
	}
	err := q.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepo) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("created_at ASC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepo) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepo) Update(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// UpdateSyncFields only touches the columns owned by the spreadsheet sync.
func (r *menuItemRepo) UpdateSyncFields(ctx context.Context, id uuid.UUID, price int64, available bool, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"price":      price,
			"available":  available,
			"updated_at": at,
			"updated_by": model.SyncActor,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (r *menuItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (r *menuItemRepo) Stats(ctx context.Context) (*MenuStats, error) {
	var stats MenuStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.MenuItem{}).Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.MenuItem{}).Where("available = ?", true).Count(&stats.AvailableCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.MenuItem{}).Where("is_best_seller = ?", true).Count(&stats.BestSellers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.MenuItem{}).Where("category = ?", model.CategoryFood).Count(&stats.FoodCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.MenuItem{}).Where("category = ?", model.CategoryBeverage).Count(&stats.BeverageCount).Error; err != nil {
		return nil, err
	}
	stats.SoldOutCount = stats.TotalItems - stats.AvailableCount

	return &stats, nil
}
