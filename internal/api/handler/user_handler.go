package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialsphere/social-api/internal/core/ports"
)

// UserHandler handles profile and social-graph requests.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Friends handles GET /users/:id/friends.
//
// @Summary      List a user's friends
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {array}   domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/friends [get]
func (h *UserHandler) Friends(c echo.Context) error {
	friends, err := h.userService.GetFriends(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, friends)
}

// ToggleFriend handles PATCH /users/:id/:friendId — adds the friendship
// when absent, removes it when present, and returns the updated friend
// list.
//
// @Summary      Add or remove a friend
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true  "User id"
// @Param        friendId  path      string  true  "Friend user id"
// @Success      200  {array}   domain.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/{friendId} [patch]
func (h *UserHandler) ToggleFriend(c echo.Context) error {
	friends, err := h.userService.ToggleFriend(c.Request().Context(), c.Param("id"), c.Param("friendId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, friends)
}
