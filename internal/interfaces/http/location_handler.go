package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nordico/barber-api/internal/application/usecase"
)

// LocationHandler expone las sedes de la cadena (solo lectura).
type LocationHandler struct {
	locations *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(locations *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// List godoc
// @Summary      Listar sedes
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.locations.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sede por ID
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.LocationResponse
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.locations.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
