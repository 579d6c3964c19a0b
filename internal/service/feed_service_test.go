package service

import (
	"context"
	"fmt"
	"testing"

	"plume/internal/models"
	"plume/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedFixture(total int64) *postRepoStub {
	repo := noopPostRepo()
	repo.countFn = func(_ context.Context, _ repository.PostFilter) (int64, error) {
		return total, nil
	}
	repo.listPageFn = func(_ context.Context, _ repository.PostFilter, limit, offset int) ([]models.Post, error) {
		var posts []models.Post
		for i := 0; i < limit && int64(offset+i) < total; i++ {
			posts = append(posts, models.Post{ID: uint(offset + i + 1)})
		}
		return posts, nil
	}
	return repo
}

func TestFeedService_GlobalFeed_Paging(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("first page of 25", func(t *testing.T) {
		t.Parallel()
		svc := NewFeedService(feedFixture(25), noopUserRepo(), noopGroupRepo(), noopFollowRepo(), 0)
		feed, err := svc.GlobalFeed(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, feed.Posts, 10)
		assert.Equal(t, 1, feed.Page.Number)
		assert.Equal(t, 3, feed.Page.TotalPages)
		assert.True(t, feed.Page.HasNext)
		assert.False(t, feed.Page.HasPrevious)
	})

	t.Run("out of range clamps to last page", func(t *testing.T) {
		t.Parallel()
		svc := NewFeedService(feedFixture(25), noopUserRepo(), noopGroupRepo(), noopFollowRepo(), 0)
		feed, err := svc.GlobalFeed(ctx, 99)
		require.NoError(t, err)
		assert.Equal(t, 3, feed.Page.Number)
		assert.Len(t, feed.Posts, 5)
		assert.False(t, feed.Page.HasNext)
	})

	t.Run("invalid page resolves to first", func(t *testing.T) {
		t.Parallel()
		svc := NewFeedService(feedFixture(25), noopUserRepo(), noopGroupRepo(), noopFollowRepo(), 0)
		feed, err := svc.GlobalFeed(ctx, -3)
		require.NoError(t, err)
		assert.Equal(t, 1, feed.Page.Number)
	})

	t.Run("empty feed is page 1 of 1", func(t *testing.T) {
		t.Parallel()
		svc := NewFeedService(feedFixture(0), noopUserRepo(), noopGroupRepo(), noopFollowRepo(), 0)
		feed, err := svc.GlobalFeed(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, feed.Posts)
		assert.NotNil(t, feed.Posts)
		assert.Equal(t, 1, feed.Page.Number)
		assert.Equal(t, 1, feed.Page.TotalPages)
	})
}

func TestFeedService_GroupFeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown slug is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewFeedService(feedFixture(5), noopUserRepo(), noopGroupRepo(), noopFollowRepo(), 0)
		_, err := svc.GroupFeed(ctx, "missing", 1)
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("filters by the resolved group id", func(t *testing.T) {
		t.Parallel()
		groups := noopGroupRepo()
		groups.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
			return &models.Group{ID: 7, Title: "Cats", Slug: slug}, nil
		}

		var seenFilter repository.PostFilter
		posts := feedFixture(3)
		baseList := posts.listPageFn
		posts.countFn = func(_ context.Context, filter repository.PostFilter) (int64, error) {
			seenFilter = filter
			return 3, nil
		}
		posts.listPageFn = func(ctx context.Context, filter repository.PostFilter, limit, offset int) ([]models.Post, error) {
			return baseList(ctx, filter, limit, offset)
		}

		svc := NewFeedService(posts, noopUserRepo(), groups, noopFollowRepo(), 0)
		feed, err := svc.GroupFeed(ctx, "cats", 1)
		require.NoError(t, err)
		assert.Equal(t, uint(7), seenFilter.GroupID)
		assert.Equal(t, "Cats", feed.Group.Title)
		assert.Len(t, feed.Posts, 3)
	})
}

func TestFeedService_ProfileFeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username != "leo" {
			return nil, models.NewNotFoundError("User", username)
		}
		return &models.User{ID: 4, Username: "leo"}, nil
	}

	t.Run("unknown username is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewFeedService(feedFixture(0), users, noopGroupRepo(), noopFollowRepo(), 0)
		_, err := svc.ProfileFeed(ctx, "ghost", 1, 0)
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("anonymous viewer never follows", func(t *testing.T) {
		t.Parallel()
		follows := noopFollowRepo()
		follows.existsFn = func(_ context.Context, _, _ uint) (bool, error) {
			t.Fatal("Exists should not be called for anonymous viewers")
			return false, nil
		}
		svc := NewFeedService(feedFixture(12), users, noopGroupRepo(), follows, 0)
		page, err := svc.ProfileFeed(ctx, "leo", 1, 0)
		require.NoError(t, err)
		assert.False(t, page.IsFollowing)
		assert.Equal(t, int64(12), page.PostCount)
	})

	t.Run("follower sees is_following", func(t *testing.T) {
		t.Parallel()
		follows := noopFollowRepo()
		follows.existsFn = func(_ context.Context, userID, authorID uint) (bool, error) {
			return userID == 9 && authorID == 4, nil
		}
		svc := NewFeedService(feedFixture(1), users, noopGroupRepo(), follows, 0)
		page, err := svc.ProfileFeed(ctx, "leo", 1, 9)
		require.NoError(t, err)
		assert.True(t, page.IsFollowing)
	})

	t.Run("own profile is never following", func(t *testing.T) {
		t.Parallel()
		svc := NewFeedService(feedFixture(1), users, noopGroupRepo(), noopFollowRepo(), 0)
		page, err := svc.ProfileFeed(ctx, "leo", 1, 4)
		require.NoError(t, err)
		assert.False(t, page.IsFollowing)
	})
}

func TestFeedService_FollowingFeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("restricts to followed authors", func(t *testing.T) {
		t.Parallel()
		follows := noopFollowRepo()
		follows.authorIDsFn = func(_ context.Context, _ uint) ([]uint, error) {
			return []uint{2, 3}, nil
		}

		var seenFilter repository.PostFilter
		posts := feedFixture(4)
		posts.countFn = func(_ context.Context, filter repository.PostFilter) (int64, error) {
			seenFilter = filter
			return 4, nil
		}

		svc := NewFeedService(posts, noopUserRepo(), noopGroupRepo(), follows, 0)
		feed, err := svc.FollowingFeed(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, []uint{2, 3}, seenFilter.AuthorIDs)
		assert.Len(t, feed.Posts, 4)
	})

	t.Run("following nobody yields an empty page, not the global feed", func(t *testing.T) {
		t.Parallel()
		var seenFilter repository.PostFilter
		posts := noopPostRepo()
		posts.countFn = func(_ context.Context, filter repository.PostFilter) (int64, error) {
			seenFilter = filter
			return 0, nil
		}

		svc := NewFeedService(posts, noopUserRepo(), noopGroupRepo(), noopFollowRepo(), 0)
		feed, err := svc.FollowingFeed(ctx, 1, 1)
		require.NoError(t, err)
		require.NotNil(t, seenFilter.AuthorIDs, "filter must carry an explicit empty author set")
		assert.Empty(t, feed.Posts)
	})
}

func TestFeedService_PagesAreDisjoint(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewFeedService(feedFixture(25), noopUserRepo(), noopGroupRepo(), noopFollowRepo(), 0)

	seen := map[uint]int{}
	for page := 1; page <= 3; page++ {
		feed, err := svc.GlobalFeed(ctx, page)
		require.NoError(t, err)
		for _, p := range feed.Posts {
			seen[p.ID]++
			assert.Equal(t, 1, seen[p.ID], fmt.Sprintf("post %d appeared twice", p.ID))
		}
	}
	assert.Len(t, seen, 25)
}
