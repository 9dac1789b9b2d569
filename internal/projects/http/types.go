package http

import "github.com/credvault/credvault-backend/internal/projects/service"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// projectReq is the request body shared by create and update. Any owner
// field a client sends is simply not part of the shape and gets dropped.
type projectReq struct {
	ProjectName       string `json:"projectName"`
	CloneLink         string `json:"cloneLink"`
	AuthorizationPass string `json:"authorizationPass"`
	FrontendEnv       string `json:"frontendEnv"`
	BackendEnv        string `json:"backendEnv"`
}
