package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/credvault/credvault-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for project records.
// Ownership is a conjunct of every lookup predicate: a row belonging to
// another owner behaves exactly like a row that does not exist.
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, project_name, clone_link, authorization_pass, frontend_env, backend_env, owner_id, created_at, updated_at`

// Create inserts a new project owned by ownerID and returns the stored row.
func (r *ProjectRepository) Create(ctx context.Context, ownerID string, in domain.ProjectInput) (*domain.Project, error) {
	const q = `
insert into projects (id, owner_id, project_name, clone_link, authorization_pass, frontend_env, backend_env)
values ($1, $2, $3, $4, $5, $6, $7)
returning ` + projectColumns + `;
`
	id := uuid.NewString()

	var p domain.Project
	err := r.db.QueryRow(ctx, q, id, ownerID, in.ProjectName, in.CloneLink, in.AuthorizationPass, in.FrontendEnv, in.BackendEnv).
		Scan(&p.ID, &p.ProjectName, &p.CloneLink, &p.AuthorizationPass, &p.FrontendEnv, &p.BackendEnv, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects owned by ownerID, newest first.
func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where owner_id = $1
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.ProjectName, &p.CloneLink, &p.AuthorizationPass, &p.FrontendEnv, &p.BackendEnv, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update overwrites all editable fields of the record matching both id and
// ownerID in a single statement.
func (r *ProjectRepository) Update(ctx context.Context, ownerID, id string, in domain.ProjectInput) (*domain.Project, error) {
	const q = `
update projects
set project_name = $3, clone_link = $4, authorization_pass = $5, frontend_env = $6, backend_env = $7, updated_at = now()
where owner_id = $1 and id = $2
returning ` + projectColumns + `;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q, ownerID, id, in.ProjectName, in.CloneLink, in.AuthorizationPass, in.FrontendEnv, in.BackendEnv).
		Scan(&p.ID, &p.ProjectName, &p.CloneLink, &p.AuthorizationPass, &p.FrontendEnv, &p.BackendEnv, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete permanently removes the record matching both id and ownerID.
func (r *ProjectRepository) Delete(ctx context.Context, ownerID, id string) error {
	const q = `
delete from projects
where owner_id = $1 and id = $2;
`
	ct, err := r.db.Exec(ctx, q, ownerID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
