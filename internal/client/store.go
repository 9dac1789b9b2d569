package client

import (
	"context"
	"errors"
	"sync"

	"github.com/credvault/credvault-backend/internal/projects/domain"
)

// Store is the sole owner of the local project list. Records live in a map
// keyed by id; display order is a separately maintained id slice, so update
// and delete never depend on list position.
//
// Local state is mutated only after a confirmed success response — a failed
// call leaves the previous records untouched and records the error.
type Store struct {
	api *Client

	mu      sync.Mutex
	records map[string]domain.Project
	order   []string
	loading bool
	err     string
}

func NewStore(api *Client) *Store {
	return &Store{
		api:     api,
		records: make(map[string]domain.Project),
	}
}

// Load fetches the full list and replaces local state wholesale. On failure
// prior data is kept and the error recorded.
func (s *Store) Load(ctx context.Context) error {
	s.begin()
	items, err := s.api.List(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]domain.Project, len(items))
	s.order = make([]string, 0, len(items))
	for _, p := range items {
		s.records[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	s.loading = false
	s.err = ""
	return nil
}

// Create persists a new project and appends it locally without re-fetching.
func (s *Store) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	s.begin()
	p, err := s.api.Create(ctx, in)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[p.ID] = *p
	s.order = append(s.order, p.ID)
	s.loading = false
	s.err = ""
	return p, nil
}

// Update overwrites the record on the server and replaces the local entry
// in place; display order is preserved.
func (s *Store) Update(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	s.begin()
	p, err := s.api.Update(ctx, id, in)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[p.ID] = *p
	s.loading = false
	s.err = ""
	return p, nil
}

// Delete removes the record on the server, then locally.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.begin()
	if err := s.api.Delete(ctx, id); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.loading = false
	s.err = ""
	return nil
}

// Projects returns the records in display order.
func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Get returns the record with the given id, if present.
func (s *Store) Get(id string) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.records[id]
	return p, ok
}

// Loading reports whether an operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message of the most recent failed operation, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		s.err = apiErr.Message
	case errors.Is(err, ErrNetwork):
		s.err = "Network error. Please try again."
	default:
		s.err = err.Error()
	}
}
