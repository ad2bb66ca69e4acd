package service

import (
	"context"
	"errors"

	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"
	"go-resto-admin/pkg/cache"
	"go-resto-admin/pkg/validator"

	"go.uber.org/zap"
)

type ContentService interface {
	GetAbout(ctx context.Context) (*model.AboutUs, error)
	UpdateAbout(ctx context.Context, req *model.AboutUs, userID string) (*model.AboutUs, error)
}

type contentService struct {
	aboutRepo  repository.AboutRepository
	aboutCache *cache.Value[*model.AboutUs]
	logger     *zap.Logger
}

func NewContentService(aboutRepo repository.AboutRepository, aboutCache *cache.Value[*model.AboutUs], logger *zap.Logger) ContentService {
	return &contentService{aboutRepo: aboutRepo, aboutCache: aboutCache, logger: logger}
}

// GetAbout serves from cache while fresh. When the refresh fails a stale copy is served instead.
func (s *contentService) GetAbout(ctx context.Context) (*model.AboutUs, error) {
	cached, fresh := s.aboutCache.Get()
	if fresh {
		return cached, nil
	}

	about, err := s.aboutRepo.Get(ctx)
	if err != nil {
		if cached != nil && !errors.Is(err, repository.ErrAboutNotFound) {
			s.logger.Warn("Serving stale about-us content", zap.Error(err))
			return cached, nil
		}
		return nil, err
	}

	s.aboutCache.Set(about)
	return about, nil
}

func (s *contentService) UpdateAbout(ctx context.Context, req *model.AboutUs, userID string) (*model.AboutUs, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	if err := s.aboutRepo.Save(ctx, req); err != nil {
		return nil, err
	}

	s.aboutCache.Invalidate()
	return req, nil
}
