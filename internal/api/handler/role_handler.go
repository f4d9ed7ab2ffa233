package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clavetec/accounts-api/internal/core/ports"
)

// RoleHandler handles HTTP requests for role resources.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

func roleID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid role id")
	}
	return id, nil
}

// Create adds a new role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role details"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, role)
}

// List returns all roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Role
// @Failure      401  {object}  errorResponse
// @Router       /v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Get returns a single role by id.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Role id"
// @Success      200  {object}  domain.Role
// @Failure      404  {object}  errorResponse
// @Router       /v1/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := roleID(c)
	if err != nil {
		return err
	}

	role, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Update applies a partial update to a role.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Role id"
// @Param        body  body      updateRoleRequest  true  "Fields to update"
// @Success      200   {object}  domain.Role
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/roles/{id} [patch]
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := roleID(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.Update(c.Request().Context(), id, ports.UpdateRoleInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Remove soft-deletes a role.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Role id"
// @Success      200  {object}  domain.Role
// @Failure      404  {object}  errorResponse
// @Router       /v1/roles/{id} [delete]
func (h *RoleHandler) Remove(c echo.Context) error {
	id, err := roleID(c)
	if err != nil {
		return err
	}

	role, err := h.service.Remove(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}
