package repository

import (
	"context"
	"errors"

	"plume/internal/models"

	"gorm.io/gorm"
)

// PostFilter narrows post listings. Zero-value fields are ignored.
type PostFilter struct {
	AuthorID  uint
	GroupID   uint
	AuthorIDs []uint
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, filter PostFilter) (int64, error)
	ListPage(ctx context.Context, filter PostFilter, limit, offset int) ([]models.Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails attaches the computed comments_count column to a post query.
func applyPostDetails(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count")
}

func applyPostFilter(db *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.AuthorID != 0 {
		db = db.Where("posts.author_id = ?", filter.AuthorID)
	}
	if filter.GroupID != 0 {
		db = db.Where("posts.group_id = ?", filter.GroupID)
	}
	if filter.AuthorIDs != nil {
		db = db.Where("posts.author_id IN ?", filter.AuthorIDs)
	}
	return db
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := applyPostDetails(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Group").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// Update writes only the mutable columns. created_at is never touched so the
// post keeps its original feed position after edits.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", post.ID).
		Select("text", "group_id", "image_key").
		Updates(map[string]interface{}{
			"text":      post.Text,
			"group_id":  post.GroupID,
			"image_key": post.ImageKey,
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", post.ID)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	db := applyPostFilter(r.db.WithContext(ctx).Model(&models.Post{}), filter)
	if err := db.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) ListPage(ctx context.Context, filter PostFilter, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	db := applyPostFilter(applyPostDetails(r.db.WithContext(ctx)), filter)
	err := db.
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return r.Count(ctx, PostFilter{AuthorID: authorID})
}
