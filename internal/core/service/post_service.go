package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialsphere/social-api/internal/api/metrics"
	"github.com/socialsphere/social-api/internal/core/domain"
	"github.com/socialsphere/social-api/internal/core/ports"
)

// FeedCache abstracts the feed cache (Redis). Get reports a miss with
// ok=false; errors are treated as misses by the service.
type FeedCache interface {
	Get(ctx context.Context) ([]*domain.Post, bool, error)
	Set(ctx context.Context, posts []*domain.Post) error
	Invalidate(ctx context.Context) error
}

// PostService implements post creation, feeds, and the like toggle.
type PostService struct {
	posts ports.PostRepository
	users ports.UserRepository
	cache FeedCache
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, cache FeedCache, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, cache: cache, log: log}
}

// CreatePost builds a post authored by in.UserID. Author display fields
// are denormalized from the user record; the like set starts empty.
func (s *PostService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	author, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:          author.ID,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		Description:     in.Description,
		PicturePath:     in.PicturePath,
		UserPicturePath: author.PicturePath,
		Likes:           map[string]bool{},
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create post")
		return nil, err
	}

	s.invalidateFeed(ctx)
	metrics.PostsCreatedTotal.Inc()

	s.log.Info().Str("post_id", created.ID).Str("user_id", created.UserID).Msg("post created")
	return created, nil
}

// Feed returns every post, newest first, serving from the cache when fresh.
func (s *PostService) Feed(ctx context.Context) ([]*domain.Post, error) {
	if cached, ok, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("feed cache read failed, falling back to store")
	} else if ok {
		metrics.FeedCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.FeedCacheTotal.WithLabelValues("miss").Inc()

	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, posts); err != nil {
		s.log.Warn().Err(err).Msg("feed cache write failed")
	}
	return posts, nil
}

func (s *PostService) UserPosts(ctx context.Context, userID string) ([]*domain.Post, error) {
	return s.posts.FindByUser(ctx, userID)
}

// ToggleLike adds userID to the like set when absent, removes it when
// present. Toggling twice restores the original state.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	likes := post.Likes
	if likes == nil {
		likes = map[string]bool{}
	}

	action := "like"
	if likes[userID] {
		delete(likes, userID)
		action = "unlike"
	} else {
		likes[userID] = true
	}

	updated, err := s.posts.UpdateLikes(ctx, postID, likes)
	if err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	metrics.LikesToggledTotal.WithLabelValues(action).Inc()
	return updated, nil
}

func (s *PostService) invalidateFeed(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("feed cache invalidation failed")
	}
}
