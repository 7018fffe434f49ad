package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/inventario-api/internal/core/ports"
)

// UserHandler handles the administrative user endpoints. Role and ownership
// gating happens in the route middleware chain; the handler only carries the
// resolved identity into the service.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users. Admin only.
//
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// Me returns the caller's own record.
//
// @Summary      Current user
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /usuarios/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Get returns a single user by id.
//
// @Summary      Get a user
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /usuarios/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Update applies a partial update to a user record.
//
// @Summary      Update a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// A whitespace-only name collapses to empty and is ignored like an
	// absent field.
	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       c.Param("id"),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Actor:    actor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: updated})
}

// Delete removes a user. Admin only; deleting one's own account is refused.
//
// @Summary      Delete a user
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
