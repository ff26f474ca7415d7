package consultation

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/telehealth/telehealth/internal/platform/apperr"
	"github.com/telehealth/telehealth/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/consultaonline")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/medico/:id", h.ListByDoctor)
	g.GET("/paciente/:id", h.ListByPatient)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var req Request
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	cons, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return httpx.Created(c, "/api/v1/consultaonline/"+strconv.FormatInt(cons.ID, 10), cons)
}

// Update replaces the consultation and responds with the stored aggregate.
func (h *Handler) Update(c echo.Context) error {
	id, err := httpx.IDParam(c, "id")
	if err != nil {
		return err
	}
	var req Request
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.svc.Update(ctx, id, req); err != nil {
		return apperr.HTTPError(err)
	}
	cons, err := h.svc.Get(ctx, id)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, cons)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := httpx.IDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return apperr.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := httpx.IDParam(c, "id")
	if err != nil {
		return err
	}
	cons, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, cons)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListByDoctor(c echo.Context) error {
	id, err := httpx.IDParam(c, "id")
	if err != nil {
		return err
	}
	items, err := h.svc.ListByDoctor(c.Request().Context(), id)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	id, err := httpx.IDParam(c, "id")
	if err != nil {
		return err
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), id)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}
