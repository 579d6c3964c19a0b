package server

import (
	"plume/internal/models"
	"plume/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /api/users/:username/posts/:id/comments
// @Summary Comment on a post
// @Description Append a comment to a post; anonymous requests are redirected to the global feed
// @Tags comments
// @Accept json
// @Produce json
// @Param username path string true "Author username"
// @Param id path int true "Post ID"
// @Param request body object{text=string} true "Comment text"
// @Success 201 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{username}/posts/{id}/comments [post]
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}
	if _, err := s.postService.GetAuthorPost(c.Context(), author.ID, id); err != nil {
		return respondServiceError(c, err)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID: userID,
		PostID: id,
		Text:   req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/users/:username/posts/:id/comments
// @Summary List a post's comments
// @Description All comments on the post, oldest first
// @Tags comments
// @Produce json
// @Param username path string true "Author username"
// @Param id path int true "Post ID"
// @Success 200 {array} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username}/posts/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}
	if _, err := s.postService.GetAuthorPost(c.Context(), author.ID, id); err != nil {
		return respondServiceError(c, err)
	}

	comments, err := s.commentService.ListComments(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}
