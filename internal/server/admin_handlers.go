package server

import (
	"time"

	"plume/internal/models"
	"plume/internal/service"

	"github.com/gofiber/fiber/v2"
)

const adminPageLimit = 50

// AdminListUsers handles GET /api/admin/users
// @Summary List users (admin)
// @Tags admin
// @Produce json
// @Param limit query int false "Max rows"
// @Param offset query int false "Row offset"
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /admin/users [get]
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", adminPageLimit)
	if limit <= 0 || limit > adminPageLimit {
		limit = adminPageLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.List(c.Context(), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// AdminSetUserRole handles PUT /api/admin/users/:id/role
// @Summary Grant or revoke admin access (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{is_admin=bool} true "Role flag"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/role [put]
func (s *Server) AdminSetUserRole(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		IsAdmin bool `json:"is_admin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userRepo.SetAdmin(c.Context(), id, req.IsAdmin); err != nil {
		return respondServiceError(c, err)
	}

	// Re-read through the repository so the response (and the cache) carry
	// the updated row.
	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// AdminListGroups handles GET /api/admin/groups
// @Summary List groups (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} models.Group
// @Security BearerAuth
// @Router /admin/groups [get]
func (s *Server) AdminListGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.ListGroups(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// AdminCreateGroup handles POST /api/admin/groups
// @Summary Create a group (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.GroupInput true "Group fields"
// @Success 201 {object} models.Group
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/groups [post]
func (s *Server) AdminCreateGroup(c *fiber.Ctx) error {
	var req service.GroupInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.CreateGroup(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// AdminUpdateGroup handles PUT /api/admin/groups/:id
// @Summary Update a group (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body service.GroupInput true "Group fields"
// @Success 200 {object} models.Group
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/groups/{id} [put]
func (s *Server) AdminUpdateGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.GroupInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.UpdateGroup(c.Context(), id, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(group)
}

// AdminDeleteGroup handles DELETE /api/admin/groups/:id
// @Summary Delete a group (admin)
// @Tags admin
// @Param id path int true "Group ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/groups/{id} [delete]
func (s *Server) AdminDeleteGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.groupService.DeleteGroup(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdminListPosts handles GET /api/admin/posts with optional text search and
// created-date filtering.
// @Summary List posts (admin)
// @Tags admin
// @Produce json
// @Param q query string false "Substring text search"
// @Param since query string false "Created on or after (RFC 3339 date)"
// @Param limit query int false "Max rows"
// @Param offset query int false "Row offset"
// @Success 200 {array} models.Post
// @Security BearerAuth
// @Router /admin/posts [get]
func (s *Server) AdminListPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", adminPageLimit)
	if limit <= 0 || limit > adminPageLimit {
		limit = adminPageLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	db := s.db.WithContext(c.Context()).Model(&models.Post{}).Preload("Author").Preload("Group")

	if q := c.Query("q"); q != "" {
		db = db.Where("text LIKE ?", "%"+q+"%")
	}
	if since := c.Query("since"); since != "" {
		t, parseErr := time.Parse("2006-01-02", since)
		if parseErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("since must be a YYYY-MM-DD date"))
		}
		db = db.Where("created_at >= ?", t)
	}

	var posts []models.Post
	if err := db.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(posts)
}

// AdminDeletePost handles DELETE /api/admin/posts/:id
// @Summary Delete a post (admin)
// @Tags admin
// @Param id path int true "Post ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/posts/{id} [delete]
func (s *Server) AdminDeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
