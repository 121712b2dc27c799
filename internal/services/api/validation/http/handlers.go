// Package http provides http transport for validation
package http

import (
	stdhttp "net/http"

	"greenpath/internal/modkit/httpkit"
	"greenpath/internal/services/api/validation/domain"
	svc "greenpath/internal/services/api/validation/service"
)

// Register mounts the validation endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.IdeaInput](r, "/validate", h.validate)
}

type handlers struct{ svc svc.Service }

// @Summary Validate a business idea
// @Tags Validation
// @Accept json
// @Produce json
// @Param payload body domain.IdeaInput true "Idea"
// @Success 200 {object} scoring.Result "ok"
// @Router /validation/validate [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.IdeaInput) (any, error) {
	return h.svc.Validate(r.Context(), httpkit.MustUser(r), in)
}
