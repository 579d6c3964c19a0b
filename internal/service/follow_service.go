package service

import (
	"context"

	"plume/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow subscribes userID to the author behind username. Following yourself
// is ignored, and following someone twice leaves a single edge. Both complete
// without error so the caller can always redirect back to the profile.
func (s *FollowService) Follow(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return nil
	}
	return s.followRepo.Create(ctx, userID, author.ID)
}

// Unfollow removes the subscription. Unfollowing someone never followed is
// a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, userID, author.ID)
}

// IsFollowing reports whether userID follows the author behind username.
func (s *FollowService) IsFollowing(ctx context.Context, userID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if author.ID == userID {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, author.ID)
}
