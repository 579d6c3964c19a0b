package server

import (
	"plume/internal/models"
	"plume/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Text     string `json:"text"`
	GroupID  *uint  `json:"group_id"`
	ImageKey string `json:"image_key"`
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Description Create a post as the signed-in author; anonymous requests are redirected to the global feed
// @Tags posts
// @Accept json
// @Produce json
// @Param request body postRequest true "Post fields"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageKey: req.ImageKey,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// GetAuthorPost handles GET /api/users/:username/posts/:id
// @Summary Get a post within a profile
// @Description The post view: the post, the author's total post count, and the comments oldest first
// @Tags users
// @Produce json
// @Param username path string true "Author username"
// @Param id path int true "Post ID"
// @Success 200 {object} object{post=models.Post,author_post_count=int,comments=[]models.Comment}
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username}/posts/{id} [get]
func (s *Server) GetAuthorPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.GetAuthorPost(c.Context(), author.ID, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	authorPosts, err := s.postService.CountByAuthor(c.Context(), author.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	comments, err := s.commentService.ListComments(c.Context(), post.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":              post,
		"author_post_count": authorPosts,
		"comments":          comments,
	})
}

// UpdatePost handles PUT /api/users/:username/posts/:id
// @Summary Edit a post
// @Description Edit a post's text, group, or image. Only the author may edit; anyone else is redirected to the post view.
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Author username"
// @Param id path int true "Post ID"
// @Param request body postRequest true "Post fields"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{username}/posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.GetAuthorPost(c.Context(), author.ID, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	// A signed-in non-owner is bounced back to the post view, mirroring how
	// anonymous users are bounced to the feed.
	if post.AuthorID != userID {
		return c.Redirect("/api/users/"+author.Username+"/posts/"+c.Params("id"), fiber.StatusSeeOther)
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:   userID,
		PostID:   id,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageKey: req.ImageKey,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(updated)
}
