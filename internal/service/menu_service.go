package service

import (
	"context"
	"errors"
	"fmt"

	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"
	"go-resto-admin/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrMenuNameExists  = errors.New("a menu item with this name already exists")
	ErrInvalidCategory = errors.New("category must be Food or Beverage")
)

// Notifier is satisfied by *ws.Hub.
type Notifier interface {
	Publish(payload interface{})
}

type MenuService interface {
	ListPublic(ctx context.Context, category string) ([]model.MenuItem, error)
	ListAll(ctx context.Context) ([]model.MenuItem, error)
	CreateItem(ctx context.Context, req *model.MenuItem, userID, userName string) error
	UpdateItem(ctx context.Context, id uuid.UUID, req *model.MenuItem, userID, userName string) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID, userID, userName string) error
}

type menuService struct {
	menuRepo repository.MenuItemRepository
	notifier Notifier
}

func NewMenuService(menuRepo repository.MenuItemRepository, notifier Notifier) MenuService {
	return &menuService{menuRepo: menuRepo, notifier: notifier}
}

// ListPublic returns available items, optionally for one category.
func (s *menuService) ListPublic(ctx context.Context, category string) ([]model.MenuItem, error) {
	filter := repository.MenuFilter{AvailableOnly: true}
	if category != "" {
		c := model.MenuCategory(category)
		if !model.IsValidCategory(c) {
			return nil, ErrInvalidCategory
		}
		filter.Category = c
	}
	return s.menuRepo.FindAll(ctx, filter)
}

func (s *menuService) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	return s.menuRepo.FindAll(ctx, repository.MenuFilter{})
}

func (s *menuService) CreateItem(ctx context.Context, req *model.MenuItem, userID, userName string) error {
	// 1. Validasi Struct Dasar
	if err := validator.FirstError(req); err != nil {
		return err
	}

	// 2. Nama harus unik (case-insensitive) karena sync mencocokkan berdasarkan nama
	existing, err := s.menuRepo.FindByName(ctx, req.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrMenuNameExists
	}

	// 3. Audit Fields
	req.ID = uuid.Nil
	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.menuRepo.Create(ctx, req); err != nil {
		return err
	}

	s.broadcast("menu_created", req, userID, userName)
	return nil
}

func (s *menuService) UpdateItem(ctx context.Context, id uuid.UUID, req *model.MenuItem, userID, userName string) (*model.MenuItem, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	existing, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Renaming onto another item's name would make the sync match two rows
	if dup, err := s.menuRepo.FindByName(ctx, req.Name); err != nil {
		return nil, err
	} else if dup != nil && dup.ID != existing.ID {
		return nil, ErrMenuNameExists
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Category = req.Category
	existing.Available = req.Available
	existing.Image = req.Image
	existing.IsBestSeller = req.IsBestSeller
	existing.UpdatedBy = userID

	if err := s.menuRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.broadcast("menu_updated", existing, userID, userName)
	return existing, nil
}

func (s *menuService) DeleteItem(ctx context.Context, id uuid.UUID, userID, userName string) error {
	existing, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.broadcast("menu_deleted", existing, userID, userName)
	return nil
}

func (s *menuService) broadcast(action string, item *model.MenuItem, userID, userName string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(map[string]interface{}{
		"type":   "menu_update",
		"action": action,
		"item": map[string]interface{}{
			"id":        item.ID,
			"name":      item.Name,
			"price":     item.Price,
			"available": item.Available,
		},
		"user": map[string]interface{}{
			"id":   userID,
			"name": userName,
		},
		"message": fmt.Sprintf("%s %s '%s'", userName, actionVerb(action), item.Name),
	})
}

func actionVerb(action string) string {
	switch action {
	case "menu_created":
		return "created"
	case "menu_deleted":
		return "deleted"
	default:
		return "updated"
	}
}
