package location

import (
	"github.com/Wim1201/locatie-informatie-v5/internal/location/service"
	"github.com/Wim1201/locatie-informatie-v5/internal/location/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/apperr"
	"github.com/Wim1201/locatie-informatie-v5/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the analysis endpoint.
type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Analyze handles POST /api/v1/locatie with a JSON or form body.
func (h *Handler) Analyze(c *gin.Context) {
	var req transport.AnalyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("ongeldige aanvraag").WithOp("location.Analyze"))
		return
	}

	result, err := h.svc.Analyze(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
