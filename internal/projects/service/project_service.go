package service

import (
	"context"
	"strings"

	"github.com/credvault/credvault-backend/internal/projects/domain"
)

// Repository is the persistence contract the service depends on.
type Repository interface {
	Create(ctx context.Context, ownerID string, in domain.ProjectInput) (*domain.Project, error)
	List(ctx context.Context, ownerID string) ([]domain.Project, error)
	Update(ctx context.Context, ownerID, id string, in domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ProjectService validates input and enforces ownership scoping on every
// project operation. The caller identity is an explicit parameter of each
// call, never ambient state.
type ProjectService struct {
	repo Repository
}

// NewProjectService creates a new project service.
func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// List returns all projects owned by the caller, newest first.
func (s *ProjectService) List(ctx context.Context, callerID string) ([]domain.Project, error) {
	return s.repo.List(ctx, callerID)
}

// Create validates the input and persists a new project owned by the caller.
// Nothing is persisted when validation fails.
func (s *ProjectService) Create(ctx context.Context, callerID string, in domain.ProjectInput) (*domain.Project, error) {
	in, err := sanitize(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, callerID, in)
}

// Update validates the input and overwrites all editable fields of the
// caller's record. Partial updates are not supported: all three required
// fields must be resupplied even when unchanged.
func (s *ProjectService) Update(ctx context.Context, callerID, id string, in domain.ProjectInput) (*domain.Project, error) {
	in, err := sanitize(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, callerID, id, in)
}

// Delete permanently removes the caller's record.
func (s *ProjectService) Delete(ctx context.Context, callerID, id string) error {
	return s.repo.Delete(ctx, callerID, id)
}

// sanitize trims every field and checks presence of the required three.
func sanitize(in domain.ProjectInput) (domain.ProjectInput, error) {
	in.ProjectName = strings.TrimSpace(in.ProjectName)
	in.CloneLink = strings.TrimSpace(in.CloneLink)
	in.AuthorizationPass = strings.TrimSpace(in.AuthorizationPass)
	in.FrontendEnv = strings.TrimSpace(in.FrontendEnv)
	in.BackendEnv = strings.TrimSpace(in.BackendEnv)

	if in.ProjectName == "" || in.CloneLink == "" || in.AuthorizationPass == "" {
		return domain.ProjectInput{}, domain.ErrValidation
	}
	return in, nil
}
