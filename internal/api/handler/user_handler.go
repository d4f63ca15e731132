package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datathon/handouts-api/internal/core/ports"
)

type UserHandler struct {
	service ports.ProfileService
}

func NewUserHandler(service ports.ProfileService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /users/:id.
//
// @Summary      Get a user profile with their posts
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(p *ports.Profile) profileResponse {
	posts := make([]postSummaryResponse, len(p.Posts))
	for i, post := range p.Posts {
		posts[i] = postSummaryResponse{ID: post.ID, Title: post.Title}
	}
	return profileResponse{
		Status: statusSuccess,
		Profile: profileBody{
			ID:       p.User.ID,
			Username: p.User.Username,
			Posts:    posts,
		},
	}
}
