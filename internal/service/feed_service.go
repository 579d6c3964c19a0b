// Package service holds the application's business rules, between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"time"

	"plume/internal/cache"
	"plume/internal/models"
	"plume/internal/pagination"
	"plume/internal/repository"
)

// FeedPage is one window of a post listing plus its page metadata.
type FeedPage struct {
	Posts []models.Post   `json:"posts"`
	Page  pagination.Page `json:"pagination"`
}

// GroupFeedPage is a group's page of posts together with the group itself.
type GroupFeedPage struct {
	Group models.Group `json:"group"`
	FeedPage
}

// ProfilePage is an author's page of posts plus the profile header data.
type ProfilePage struct {
	Author      models.User `json:"author"`
	PostCount   int64       `json:"post_count"`
	IsFollowing bool        `json:"is_following"`
	FeedPage
}

type FeedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
	feedTTL    time.Duration
}

// NewFeedService wires the feed views. feedTTL is how long cached global-feed
// pages live; zero or negative disables the cache entirely.
func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
	feedTTL time.Duration,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
		feedTTL:    feedTTL,
	}
}

// fetchPage counts the filtered set, resolves the requested page against the
// count, then loads that window. Every feed view shares this path so the
// clamping rules never drift between views.
func (s *FeedService) fetchPage(ctx context.Context, filter repository.PostFilter, requested int) (*FeedPage, error) {
	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := pagination.Resolve(requested, total)
	posts, err := s.postRepo.ListPage(ctx, filter, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return &FeedPage{Posts: posts, Page: page}, nil
}

// GlobalFeed returns the site-wide feed, newest first. Leading pages are
// served through a short-lived cache, so a just-created post may take up to
// the configured feed TTL to appear here.
func (s *FeedService) GlobalFeed(ctx context.Context, requested int) (*FeedPage, error) {
	if s.feedTTL <= 0 || requested > 5 {
		return s.fetchPage(ctx, repository.PostFilter{}, requested)
	}

	cacheKey := requested
	if cacheKey < 1 {
		cacheKey = 1
	}

	var feed FeedPage
	err := cache.Aside(ctx, cache.FeedPageKey(cacheKey), &feed, s.feedTTL, func() error {
		fresh, fetchErr := s.fetchPage(ctx, repository.PostFilter{}, requested)
		if fetchErr != nil {
			return fetchErr
		}
		feed = *fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &feed, nil
}

// GroupFeed returns the posts of one group, looked up by slug.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, requested int) (*GroupFeedPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	feed, err := s.fetchPage(ctx, repository.PostFilter{GroupID: group.ID}, requested)
	if err != nil {
		return nil, err
	}

	return &GroupFeedPage{Group: *group, FeedPage: *feed}, nil
}

// ProfileFeed returns an author's posts plus the header data the profile
// view renders: total post count and whether the viewer follows the author.
// viewerID 0 means an anonymous viewer, whose is_following is always false.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, requested int, viewerID uint) (*ProfilePage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	feed, err := s.fetchPage(ctx, repository.PostFilter{AuthorID: author.ID}, requested)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != 0 && viewerID != author.ID {
		isFollowing, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &ProfilePage{
		Author:      *author,
		PostCount:   feed.Page.TotalCount,
		IsFollowing: isFollowing,
		FeedPage:    *feed,
	}, nil
}

// FollowingFeed returns posts authored by the users the reader follows.
// A reader who follows nobody gets an empty first page, not the global feed.
func (s *FeedService) FollowingFeed(ctx context.Context, userID uint, requested int) (*FeedPage, error) {
	authorIDs, err := s.followRepo.AuthorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if authorIDs == nil {
		authorIDs = []uint{}
	}

	return s.fetchPage(ctx, repository.PostFilter{AuthorIDs: authorIDs}, requested)
}
