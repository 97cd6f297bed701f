package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Alisher1994/dbudget/internal/api/metrics"
	"github.com/Alisher1994/dbudget/internal/core/ports"
)

// ObjectHandler handles HTTP requests for construction objects.
type ObjectHandler struct {
	service ports.ObjectService
}

func NewObjectHandler(service ports.ObjectService) *ObjectHandler {
	return &ObjectHandler{service: service}
}

// List handles GET /api/objects. The result set is scoped server-side:
// clients only receive objects assigned to them.
//
// @Summary      List visible construction objects
// @Tags         objects
// @Produce      json
// @Success      200  {array}   ports.ObjectView
// @Failure      401  {object}  errorResponse
// @Router       /api/objects [get]
func (h *ObjectHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/objects/:id.
//
// @Summary      Get a single object
// @Tags         objects
// @Produce      json
// @Param        id   path      int  true  "Object id"
// @Success      200  {object}  ports.ObjectView
// @Failure      404  {object}  errorResponse
// @Router       /api/objects/{id} [get]
func (h *ObjectHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	view, err := h.service.Get(c.Request().Context(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /api/objects (admin only).
//
// @Summary      Create a construction object
// @Tags         objects
// @Accept       json
// @Produce      json
// @Param        body  body      objectRequest  true  "Object fields"
// @Success      200   {object}  ports.ObjectView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/objects [post]
func (h *ObjectHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req objectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), identity, toObjectInput(req))
	if err != nil {
		return err
	}

	metrics.ObjectsCreatedTotal.Inc()

	return c.JSON(http.StatusOK, view)
}

// Update handles PUT /api/objects/:id (admin only). The request body
// replaces the row as a whole; callers must send the full field set.
//
// @Summary      Replace a construction object
// @Tags         objects
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Object id"
// @Param        body  body      objectRequest  true  "Full object fields"
// @Success      200   {object}  ports.ObjectView
// @Failure      404   {object}  errorResponse
// @Router       /api/objects/{id} [put]
func (h *ObjectHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req objectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), identity, id, toObjectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/objects/:id (admin only).
//
// @Summary      Delete a construction object
// @Tags         objects
// @Produce      json
// @Param        id   path      int  true  "Object id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/objects/{id} [delete]
func (h *ObjectHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Stats handles GET /api/stats: budget totals over the requester's
// visible objects.
//
// @Summary      Aggregate budget statistics
// @Tags         objects
// @Produce      json
// @Success      200  {object}  ports.StatsResult
// @Failure      401  {object}  errorResponse
// @Router       /api/stats [get]
func (h *ObjectHandler) Stats(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.Stats(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func toObjectInput(req objectRequest) ports.ObjectInput {
	return ports.ObjectInput{
		Name:     req.Name,
		Address:  req.Address,
		Budget:   derefOrZero(req.Budget),
		Spent:    derefOrZero(req.Spent),
		ClientID: req.ClientID,
		Photo:    req.Photo,
	}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
