package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowAuthor handles POST /api/users/:username/follow
// @Summary Follow an author
// @Description Subscribe to an author's posts. Following yourself or following twice is a no-op; the request completes by redirecting back to the profile.
// @Tags follows
// @Param username path string true "Author username"
// @Success 303
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{username}/follow [post]
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Follow(c.Context(), userID, username); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect("/api/users/"+username+"/posts", fiber.StatusSeeOther)
}

// UnfollowAuthor handles DELETE /api/users/:username/follow
// @Summary Unfollow an author
// @Description Remove the subscription; unfollowing someone never followed is a no-op. Completes by redirecting back to the profile.
// @Tags follows
// @Param username path string true "Author username"
// @Success 303
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{username}/follow [delete]
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Unfollow(c.Context(), userID, username); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect("/api/users/"+username+"/posts", fiber.StatusSeeOther)
}
