package handler

import (
	"github.com/labstack/echo/v4"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/usecase"
	"gigmarket/pkg/response"
)

type GigHandler struct {
	discoveryUseCase *usecase.DiscoveryUseCase
	gigUseCase       *usecase.GigUseCase
}

func NewGigHandler(discoveryUseCase *usecase.DiscoveryUseCase, gigUseCase *usecase.GigUseCase) *GigHandler {
	return &GigHandler{
		discoveryUseCase: discoveryUseCase,
		gigUseCase:       gigUseCase,
	}
}

type searchResponse struct {
	Query   string            `json:"query"`
	Skipped bool              `json:"skipped"`
	Results []*entity.Profile `json:"results"`
}

// Search with a blank city is not an error: the previous results come back
// with skipped=true.
func (h *GigHandler) Search(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	query := c.QueryParam("city")
	results, skipped, err := h.discoveryUseCase.SessionFor(uid).Search(c.Request().Context(), query)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, searchResponse{
		Query:   entity.NormalizeCity(query),
		Skipped: skipped,
		Results: results,
	})
}

func (h *GigHandler) GetGig(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	view, err := h.gigUseCase.View(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, view)
}
