package server

import (
	"io"
	"mime"
	"path/filepath"

	"plume/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UploadImage handles POST /api/uploads
// @Summary Upload a post image
// @Description Store an image blob and return its opaque key for use in a post. The blob is validated by content, not by filename or declared type.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} object{key=string}
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /uploads [post]
func (s *Server) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	key, err := s.blobs.Save(content, fileHeader.Filename)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}

// ServeMedia handles GET /media/*
// @Summary Serve a stored image blob
// @Tags uploads
// @Param key path string true "Blob key"
// @Success 200
// @Failure 404 {object} models.ErrorResponse
// @Router /media/{key} [get]
func (s *Server) ServeMedia(c *fiber.Ctx) error {
	key := c.Params("*")

	f, err := s.blobs.Open(key)
	if err != nil {
		return respondServiceError(c, err)
	}

	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		c.Set(fiber.HeaderContentType, ct)
	}
	return c.SendStream(f)
}
