package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
// @Summary Global feed
// @Description Every post on the site, newest first, ten per page
// @Tags feed
// @Produce json
// @Param page query int false "1-based page number"
// @Success 200 {object} service.FeedPage
// @Router /feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.GlobalFeed(c.Context(), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GetFollowingFeed handles GET /api/feed/following
// @Summary Personalized feed
// @Description Posts by authors the signed-in reader follows
// @Tags feed
// @Produce json
// @Param page query int false "1-based page number"
// @Success 200 {object} service.FeedPage
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /feed/following [get]
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	feed, err := s.feedService.FollowingFeed(c.Context(), userID, parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GetGroups handles GET /api/groups
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {array} models.Group
// @Router /groups [get]
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.ListGroups(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// GetGroup handles GET /api/groups/:slug
// @Summary Group detail
// @Tags groups
// @Produce json
// @Param slug path string true "Group slug"
// @Success 200 {object} models.Group
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/{slug} [get]
func (s *Server) GetGroup(c *fiber.Ctx) error {
	group, err := s.groupService.GetGroup(c.Context(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(group)
}

// GetGroupFeed handles GET /api/groups/:slug/posts
// @Summary Group feed
// @Description Posts belonging to one group, newest first
// @Tags groups
// @Produce json
// @Param slug path string true "Group slug"
// @Param page query int false "1-based page number"
// @Success 200 {object} service.GroupFeedPage
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/{slug}/posts [get]
func (s *Server) GetGroupFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.GroupFeed(c.Context(), c.Params("slug"), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GetProfileFeed handles GET /api/users/:username/posts
// @Summary Profile feed
// @Description One author's posts plus profile header data
// @Tags users
// @Produce json
// @Param username path string true "Author username"
// @Param page query int false "1-based page number"
// @Success 200 {object} service.ProfilePage
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username}/posts [get]
func (s *Server) GetProfileFeed(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	page, err := s.feedService.ProfileFeed(c.Context(), c.Params("username"), parsePage(c), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// AboutAuthor handles GET /api/about/author
func (s *Server) AboutAuthor(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "About the author",
		"body":  "Plume is a small social blogging service for writing, grouping, and following posts.",
	})
}

// AboutTech handles GET /api/about/tech
func (s *Server) AboutTech(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Technology",
		"body":  "Go, Fiber, GORM, PostgreSQL, and Redis.",
	})
}
