package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialsphere/social-api/internal/core/ports"
)

// PostHandler handles post creation, feeds, and likes.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type createPostRequest struct {
	Description string `json:"description" form:"description" validate:"required,max=2000"`
}

// Create handles POST /posts. The author is always the authenticated
// identity; any author field in the body is ignored.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        description  formData  string  true   "Post body text"
// @Param        picture      formData  file    false  "Attached image"
// @Success      201  {object}  domain.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.CreatePost(c.Request().Context(), ports.CreatePostInput{
		UserID:      userID,
		Description: req.Description,
		PicturePath: ctxPicturePath(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// Feed handles GET /posts — every post, newest first.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Post
// @Failure      403  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) Feed(c echo.Context) error {
	posts, err := h.postService.Feed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// UserPosts handles GET /posts/:userId/posts.
//
// @Summary      List posts by one author
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Author user id"
// @Success      200  {array}   domain.Post
// @Failure      403  {object}  map[string]string
// @Router       /posts/{userId}/posts [get]
func (h *PostHandler) UserPosts(c echo.Context) error {
	posts, err := h.postService.UserPosts(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Like handles PATCH /posts/:id/like — toggles the caller's like entry.
//
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [patch]
func (h *PostHandler) Like(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	post, err := h.postService.ToggleLike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}
