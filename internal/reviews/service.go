package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrShowNotFound    = errors.New("show not found")
	ErrNotReviewAuthor = errors.New("review belongs to another user")
)

// ShowChecker verifies the reviewed show exists without importing the
// shows package
type ShowChecker interface {
	ShowExists(ctx context.Context, showID uuid.UUID) (bool, error)
}

type Service interface {
	CreateReview(ctx context.Context, showID, authorID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error)
	GetShowReviews(ctx context.Context, showID uuid.UUID) ([]ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID, actorID uuid.UUID, req UpdateReviewRequest) (*ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID) error
}

type service struct {
	repo  Repository
	shows ShowChecker
}

func NewService(repo Repository, shows ShowChecker) Service {
	return &service{repo: repo, shows: shows}
}

func (s *service) CreateReview(ctx context.Context, showID, authorID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	if err := s.ensureShowExists(ctx, showID); err != nil {
		return nil, err
	}

	review := &Review{
		ShowID:   showID,
		AuthorID: authorID,
		Comment:  req.Comment,
		Rating:   req.Rating,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// Re-read to pick up the author association for the response
	created, err := s.repo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	resp := created.ToResponse()
	return &resp, nil
}

func (s *service) GetShowReviews(ctx context.Context, showID uuid.UUID) ([]ReviewResponse, error) {
	if err := s.ensureShowExists(ctx, showID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.GetByShow(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		response = append(response, reviews[i].ToResponse())
	}
	return response, nil
}

// UpdateReview rejects non-authors before touching the row. Admins get
// no special treatment here; moderation happens through deletion of the
// whole show.
func (s *service) UpdateReview(ctx context.Context, reviewID, actorID uuid.UUID, req UpdateReviewRequest) (*ReviewResponse, error) {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.AuthorID != actorID {
		return nil, ErrNotReviewAuthor
	}

	updates := make(map[string]interface{})
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, reviewID, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID) error {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.AuthorID != actorID {
		return ErrNotReviewAuthor
	}
	return s.repo.Delete(ctx, reviewID)
}

func (s *service) ensureShowExists(ctx context.Context, showID uuid.UUID) error {
	exists, err := s.shows.ShowExists(ctx, showID)
	if err != nil {
		return fmt.Errorf("failed to check show: %w", err)
	}
	if !exists {
		return ErrShowNotFound
	}
	return nil
}
