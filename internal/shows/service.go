package shows

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"

	"cinebook/internal/seats"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/utils/constants"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"
)

var ErrInvalidGenre = errors.New("invalid genre")

type Service interface {
	CreateShow(ctx context.Context, ownerID uuid.UUID, req CreateShowRequest) (*ShowResponse, error)
	GetShow(ctx context.Context, id uuid.UUID) (*ShowResponse, error)
	GetShowBySlug(ctx context.Context, showSlug string) (*ShowResponse, error)
	GetAllShows(ctx context.Context) ([]ShowResponse, error)
	UpdateShow(ctx context.Context, id uuid.UUID, req UpdateShowRequest) (*ShowResponse, error)
	DeleteShow(ctx context.Context, id uuid.UUID) error
	ShowExists(ctx context.Context, id uuid.UUID) (bool, error)

	// Raw model access for cross-domain collaborators (booking orchestrator)
	GetShowModel(ctx context.Context, id uuid.UUID) (*Show, error)
}

type service struct {
	repo         Repository
	seatService  seats.Service
	config       *config.Config
	cacheService cache.Service
}

func NewService(repo Repository, seatService seats.Service, cfg *config.Config) *service {
	return &service{
		repo:        repo,
		seatService: seatService,
		config:      cfg,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateShow(ctx context.Context, ownerID uuid.UUID, req CreateShowRequest) (*ShowResponse, error) {
	if !IsValidGenre(req.Genre) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGenre, req.Genre)
	}

	show := &Show{
		Title:       strings.TrimSpace(req.Title),
		Summary:     req.Summary,
		Director:    req.Director,
		DurationMin: req.DurationMin,
		Genre:       Genre(req.Genre),
		Showtime:    req.Showtime,
		OwnerID:     ownerID,
	}

	showSlug, err := s.uniqueSlug(ctx, show.Title)
	if err != nil {
		return nil, err
	}
	show.Slug = showSlug

	if err := s.repo.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	// Seat map: explicit list wins, otherwise generate the default 1..N
	if len(req.SeatNumbers) > 0 {
		if _, err := s.seatService.Replace(ctx, show.ID, req.SeatNumbers); err != nil {
			return nil, err
		}
	} else {
		if err := s.seatService.GenerateDefault(ctx, show.ID, s.config.Booking.SeatCapacity); err != nil {
			return nil, fmt.Errorf("failed to generate seat map: %w", err)
		}
	}

	logger.GetDefault().LogShowCreated(ctx, show.ID.String(), ownerID.String())
	s.invalidateListCache(ctx)

	return s.GetShow(ctx, show.ID)
}

func (s *service) GetShow(ctx context.Context, id uuid.UUID) (*ShowResponse, error) {
	ctxKey := constants.BuildShowDetailKey(id.String())
	if s.cacheService != nil {
		var cached ShowResponse
		if err := s.cacheService.Get(ctx, ctxKey, &cached); err == nil {
			return &cached, nil
		}
	}

	show, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(show)
	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, ctxKey, resp, constants.TTL_SHOW_DETAIL); err != nil {
			logger.GetDefault().Debug("failed to cache show detail", "key", ctxKey, "error", err)
		}
	}
	return resp, nil
}

func (s *service) GetShowBySlug(ctx context.Context, showSlug string) (*ShowResponse, error) {
	show, err := s.repo.GetBySlug(ctx, showSlug)
	if err != nil {
		return nil, err
	}
	return toResponse(show), nil
}

func (s *service) GetAllShows(ctx context.Context) ([]ShowResponse, error) {
	if s.cacheService != nil {
		var cached []ShowResponse
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_SHOWS_LIST, &cached); err == nil {
			return cached, nil
		}
	}

	shows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	response := make([]ShowResponse, 0, len(shows))
	for i := range shows {
		response = append(response, *toResponse(&shows[i]))
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, constants.CACHE_KEY_SHOWS_LIST, response, constants.TTL_SHOWS_LIST); err != nil {
			logger.GetDefault().Debug("failed to cache show list", "error", err)
		}
	}
	return response, nil
}

func (s *service) UpdateShow(ctx context.Context, id uuid.UUID, req UpdateShowRequest) (*ShowResponse, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.Director != nil {
		updates["director"] = *req.Director
	}
	if req.DurationMin != nil {
		updates["duration_min"] = *req.DurationMin
	}
	if req.Genre != nil {
		if !IsValidGenre(*req.Genre) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidGenre, *req.Genre)
		}
		updates["genre"] = *req.Genre
	}
	if req.Showtime != nil {
		updates["showtime"] = *req.Showtime
	}

	show, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.invalidateShowCache(ctx, id)
	return toResponse(show), nil
}

func (s *service) DeleteShow(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateShowCache(ctx, id)
	return nil
}

func (s *service) ShowExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *service) GetShowModel(ctx context.Context, id uuid.UUID) (*Show, error) {
	return s.repo.GetByID(ctx, id)
}

// uniqueSlug derives a URL slug from the title, disambiguating collisions
// with a short random suffix
func (s *service) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	exists, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if !exists {
		return base, nil
	}
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return base + "-" + suffix, nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.CACHE_KEY_SHOWS_LIST); err != nil {
		logger.GetDefault().Debug("failed to invalidate show list cache", "error", err)
	}
}

func (s *service) invalidateShowCache(ctx context.Context, id uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.InvalidationPatternForShow(id.String())); err != nil {
		logger.GetDefault().Debug("failed to invalidate show cache", "show_id", id.String(), "error", err)
	}
	s.invalidateListCache(ctx)
}

func toResponse(show *Show) *ShowResponse {
	var resp ShowResponse
	// copier maps the scalar fields by name; identifiers and nested
	// display structs are filled explicitly
	_ = copier.Copy(&resp, show)
	resp.ID = show.ID.String()
	resp.Genre = string(show.Genre)
	if show.Owner != nil {
		resp.Owner = &OwnerInfo{
			ID:        show.Owner.ID.String(),
			FirstName: show.Owner.FirstName,
			LastName:  show.Owner.LastName,
			Email:     show.Owner.Email,
		}
	}
	return &resp
}
