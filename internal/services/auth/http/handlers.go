// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"greenpath/internal/modkit/httpkit"
	"greenpath/internal/services/auth/domain"
	svc "greenpath/internal/services/auth/service"
)

// Register mounts the public auth endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SignupInput](r, "/signup", h.signup)
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)
}

// RegisterProtected mounts the endpoints that require a bearer token
func RegisterProtected(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/me", h.me)
}

type handlers struct{ svc svc.Service }

// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.SignupInput true "Account"
// @Success 201 {object} domain.Session "created"
// @Router /auth/signup [post]
func (h *handlers) signup(r *stdhttp.Request, in domain.SignupInput) (any, error) {
	out, err := h.svc.Signup(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary Exchange credentials for a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.Session "ok"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	return h.svc.Login(r.Context(), in)
}

// @Summary Current account
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.User "ok"
// @Router /auth/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), uid)
}
