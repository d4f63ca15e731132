package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datathon/handouts-api/internal/api/metrics"
	"github.com/datathon/handouts-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts/create.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post title and author"
// @Success      200   {object}  createPostResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /posts/create [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), req.Title, req.AuthorID)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, createPostResponse{
		Status: statusSuccess,
		Post:   postSummaryResponse{ID: post.ID, Title: post.Title},
	})
}

// List handles GET /posts/list.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  listPostsResponse
// @Failure      500  {object}  errorResponse
// @Router       /posts/list [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]postListItemResponse, len(posts))
	for i, p := range posts {
		items[i] = postListItemResponse{ID: p.ID, Title: p.Title, Requested: p.Requested}
	}
	return c.JSON(http.StatusOK, listPostsResponse{Status: statusSuccess, Posts: items})
}

// Request handles POST /posts/request/:id.
//
// @Summary      Mark a post as requested
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/request/{id} [post]
func (h *PostHandler) Request(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.service.MarkRequested(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.PostsRequestedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{
		Status:  statusSuccess,
		Message: fmt.Sprintf("Post %d requested", id),
	})
}
