package services

import (
	"context"
	"fmt"
	"time"

	"mfergm/app/models"
	"mfergm/app/moderation"
	"mfergm/app/repositories"
)

// CreatePostInput carries the fields of a create request.
type CreatePostInput struct {
	Content   string `json:"content"`
	Title     string `json:"title"`
	Address   string `json:"address"`
	Thumbnail string `json:"thumbnail"`
	Balance   string `json:"balance"`
}

// Pagination describes one page of a post listing.
type Pagination struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PostService handles business logic for daily mfer posts
type PostService struct {
	postRepo  repositories.PostRepository
	moderator moderation.Moderator
	now       func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, moderator moderation.Moderator) *PostService {
	return &PostService{
		postRepo:  postRepo,
		moderator: moderator,
		now:       time.Now,
	}
}

// SetClock overrides the service clock, used by tests to pin the day window.
func (s *PostService) SetClock(now func() time.Time) {
	s.now = now
}

// CreatePost validates the input, enforces the one-post-per-mfer-per-day
// rule, runs content moderation, and persists the post. The stored post is
// returned with the moderation verdict applied.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	if input.Address == "" {
		return nil, &ValidationError{Message: "No address provided"}
	}
	if input.Title == "" {
		return nil, &ValidationError{Message: "No mfer title provided"}
	}
	if input.Thumbnail == "" {
		return nil, &ValidationError{Message: "No thumbnail provided"}
	}

	post := &models.Post{
		Content: input.Content,
		Author: models.Author{
			Address:   input.Address,
			Title:     input.Title,
			Thumbnail: input.Thumbnail,
			Balance:   input.Balance,
		},
		CreatedAt: s.now(),
	}
	if err := post.Validate(); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid post: %v", err)}
	}

	// Check if this mfer has already posted today before spending a
	// moderation call.
	posted, err := s.postRepo.HasPostedOn(input.Address, input.Title, input.Thumbnail, post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to check daily post: %v", err)
	}
	if posted {
		return nil, ErrDuplicatePost
	}

	flagged, err := s.moderator.Moderate(ctx, input.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to moderate content: %v", err)
	}
	post.Moderated = true
	post.Approved = !flagged

	if err := s.postRepo.Create(post); err != nil {
		// A concurrent create for the same mfer may land between the
		// existence check and the insert; the store-level constraint is
		// authoritative.
		if err == repositories.ErrDuplicateDay {
			return nil, ErrDuplicatePost
		}
		return nil, fmt.Errorf("failed to create post: %v", err)
	}

	return post, nil
}

// ListPosts retrieves a page of approved posts, newest first, along with
// pagination totals.
func (s *PostService) ListPosts(page, limit int) ([]*models.Post, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	posts, err := s.postRepo.ListApproved(limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	total, err := s.postRepo.CountApproved()
	if err != nil {
		return nil, Pagination{}, err
	}

	return posts, Pagination{
		Total: total,
		Pages: (total + limit - 1) / limit,
		Page:  page,
		Limit: limit,
	}, nil
}
