package service

import (
	"context"

	"plume/internal/cache"
	"plume/internal/models"
	"plume/internal/repository"
	"plume/internal/validation"
)

type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

// CreatePostInput carries a create request after authentication resolved the
// author. AuthorID comes from the session, never from the payload.
type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageKey string
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageKey string
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{postRepo: postRepo, groupRepo: groupRepo}
}

func (s *PostService) validateGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		if models.IsNotFound(err) {
			return validation.FieldErrors{{Field: "group_id", Message: "group does not exist"}}
		}
		return err
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if errs := validation.ValidatePost(validation.PostInput{Text: in.Text, GroupID: in.GroupID, ImageKey: in.ImageKey}); errs.HasErrors() {
		return nil, errs
	}
	if err := s.validateGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		ImageKey: in.ImageKey,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidateFeed(ctx)
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// GetAuthorPost looks a post up within one author's profile: a valid post id
// under the wrong username is still a not-found.
func (s *PostService) GetAuthorPost(ctx context.Context, authorID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// UpdatePost edits a post's mutable fields. The route guard already turns
// non-owner requests into redirects; a non-owner reaching this far gets an
// unauthorized error.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewUnauthorizedError("Only the author can edit this post")
	}

	if errs := validation.ValidatePost(validation.PostInput{Text: in.Text, GroupID: in.GroupID, ImageKey: in.ImageKey}); errs.HasErrors() {
		return nil, errs
	}
	if err := s.validateGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	post.ImageKey = in.ImageKey
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidateFeed(ctx)
	return s.postRepo.GetByID(ctx, in.PostID)
}

// CountByAuthor returns the author's total post count, shown on the post view.
func (s *PostService) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.postRepo.CountByAuthor(ctx, authorID)
}

// DeletePost removes a post. Admin console only; regular authors have no
// delete surface.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateFeed(ctx)
	return nil
}

// IsOwner reports whether userID authored the post.
func (s *PostService) IsOwner(ctx context.Context, postID, userID uint) (bool, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}
	return post.AuthorID == userID, nil
}
