package address

import (
	"github.com/Wim1201/locatie-informatie-v5/internal/address/service"
	"github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/apperr"
	"github.com/Wim1201/locatie-informatie-v5/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the address autocomplete endpoint.
type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Suggest handles GET /api/v1/adres/suggest?q=...
func (h *Handler) Suggest(c *gin.Context) {
	var req transport.SuggestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("zoekterm 'q' is verplicht (minimaal 3 tekens)").WithOp("address.Suggest"))
		return
	}

	results, err := h.svc.Suggest(c.Request.Context(), req.Query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, results)
}
