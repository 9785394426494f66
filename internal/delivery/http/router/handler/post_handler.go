package handler

import (
	"log/slog"
	"net/http"

	"infostore/internal/delivery/http/response"
	"infostore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the post creation request.
func (h *PostHandler) Create(c echo.Context) error {
	var input *usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Post created successfully")
}

// Update handles the post update request.
func (h *PostHandler) Update(c echo.Context) error {
	var input *usecase.UpdatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Post updated successfully")
}

// Delete handles the batch post deletion request. The body is a JSON array
// of post IDs.
func (h *PostHandler) Delete(c echo.Context) error {
	var ids []uuid.UUID
	if err := c.Bind(&ids); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deletion input")
	}

	output, err := h.uc.Delete(c.Request().Context(), ids)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Posts deleted successfully")
}

// List handles the post listing request.
func (h *PostHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Posts retrieved successfully")
}
