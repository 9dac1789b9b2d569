package domain

import "time"

// Project is a single stored project record owned by a user.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID                string    `json:"id"`
	ProjectName       string    `json:"projectName"`
	CloneLink         string    `json:"cloneLink"`
	AuthorizationPass string    `json:"authorizationPass"`
	FrontendEnv       string    `json:"frontendEnv"`
	BackendEnv        string    `json:"backendEnv"`
	OwnerID           string    `json:"ownerId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ProjectInput carries the client-editable fields of a project.
// Owner identity is never part of the input; it always comes from the caller.
type ProjectInput struct {
	ProjectName       string
	CloneLink         string
	AuthorizationPass string
	FrontendEnv       string
	BackendEnv        string
}
