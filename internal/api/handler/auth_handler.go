package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialsphere/social-api/internal/core/domain"
	"github.com/socialsphere/social-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	FirstName  string `json:"firstName"  form:"firstName"  validate:"required"`
	LastName   string `json:"lastName"   form:"lastName"`
	Email      string `json:"email"      form:"email"      validate:"required,email"`
	Password   string `json:"password"   form:"password"   validate:"required,min=6"`
	Location   string `json:"location"   form:"location"`
	Occupation string `json:"occupation" form:"occupation"`
}

type loginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user"`
}

// Register creates a new user account. The optional picture arrives as a
// multipart field handled by the Upload middleware.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Param        firstName   formData  string  true   "First name"
// @Param        lastName    formData  string  false  "Last name"
// @Param        email       formData  string  true   "Email (unique identity)"
// @Param        password    formData  string  true   "Password"
// @Param        location    formData  string  false  "Location"
// @Param        occupation  formData  string  false  "Occupation"
// @Param        picture     formData  file    false  "Profile picture"
// @Success      201  {object}  authResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PicturePath: ctxPicturePath(c),
		Location:    req.Location,
		Occupation:  req.Occupation,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
