// Package http provides http transport for ideas
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"greenpath/internal/modkit/httpkit"
	"greenpath/internal/services/api/ideas/domain"
	svc "greenpath/internal/services/api/ideas/service"
)

// Register mounts the idea CRUD endpoints on the given router.
// The module guards the whole prefix with bearer auth
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary Create an idea
// @Tags Ideas
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Idea"
// @Success 201 {object} domain.Idea "created"
// @Router /ideas [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	out, err := h.svc.Create(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary List my ideas newest first
// @Tags Ideas
// @Produce json
// @Success 200 {array} domain.Idea "ok"
// @Router /ideas [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), httpkit.MustUser(r))
}

// @Summary Get one idea
// @Tags Ideas
// @Produce json
// @Param id path string true "Idea id"
// @Success 200 {object} domain.Idea "ok"
// @Router /ideas/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "id"))
}

// @Summary Patch an idea
// @Tags Ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea id"
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Idea "ok"
// @Router /ideas/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "id"), in)
}

// @Summary Delete an idea
// @Tags Ideas
// @Param id path string true "Idea id"
// @Success 204 "deleted"
// @Router /ideas/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
