package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/socialsphere/social-api/internal/core/domain"
	"github.com/socialsphere/social-api/internal/core/ports"
)

// UserService implements profile retrieval and social-graph operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetFriends(ctx context.Context, id string) ([]*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(user.Friends) == 0 {
		return []*domain.User{}, nil
	}
	return s.repo.FindByIDs(ctx, user.Friends)
}

// ToggleFriend keeps the friendship symmetric: both friend lists gain or
// lose an entry in the same call.
func (s *UserService) ToggleFriend(ctx context.Context, id, friendID string) ([]*domain.User, error) {
	if id == friendID {
		return nil, domain.ErrInvalidFriend
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	friend, err := s.repo.FindByID(ctx, friendID)
	if err != nil {
		return nil, err
	}

	if user.HasFriend(friendID) {
		user.Friends = remove(user.Friends, friendID)
		friend.Friends = remove(friend.Friends, id)
	} else {
		user.Friends = append(user.Friends, friendID)
		friend.Friends = append(friend.Friends, id)
	}

	if err := s.repo.UpdateFriends(ctx, user.ID, user.Friends); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFriends(ctx, friend.ID, friend.Friends); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", id).
		Str("friend_id", friendID).
		Bool("added", user.HasFriend(friendID)).
		Msg("friendship toggled")

	if len(user.Friends) == 0 {
		return []*domain.User{}, nil
	}
	return s.repo.FindByIDs(ctx, user.Friends)
}

func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
