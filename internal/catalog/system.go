package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/route-docs/pkg/pagination"
)

// System defines the catalog storage operations.
type System interface {
	List(ctx context.Context) ([]Item, error)
	Search(ctx context.Context, req pagination.PageRequest) (pagination.PageResult[Item], error)
	Create(ctx context.Context, cmd CreateCommand) (*Item, error)
	Get(ctx context.Context, id uuid.UUID) (*Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type store struct {
	items map[uuid.UUID]Item
	mu    sync.RWMutex
	now   func() time.Time
}

// NewSystem creates an empty in-memory catalog.
func NewSystem() System {
	return &store{
		items: make(map[uuid.UUID]Item),
		now:   time.Now,
	}
}

// List returns all items ordered by creation time, then name.
func (s *store) List(ctx context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, b Item) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return items, nil
}

// Search returns one page of the items whose name or description contains
// req.Search, case-insensitively, in List order.
func (s *store) Search(ctx context.Context, req pagination.PageRequest) (pagination.PageResult[Item], error) {
	items, err := s.List(ctx)
	if err != nil {
		return pagination.PageResult[Item]{}, err
	}

	if term := strings.ToLower(req.Search); term != "" {
		items = slices.DeleteFunc(items, func(it Item) bool {
			return !strings.Contains(strings.ToLower(it.Name), term) &&
				!strings.Contains(strings.ToLower(it.Description), term)
		})
	}
	return pagination.Paginate(items, req), nil
}

func (s *store) Create(ctx context.Context, cmd CreateCommand) (*Item, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if strings.EqualFold(it.Name, name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, name)
		}
	}

	it := Item{
		ID:          uuid.New(),
		Name:        name,
		Description: cmd.Description,
		CreatedAt:   s.now().UTC(),
	}
	s.items[it.ID] = it
	return &it, nil
}

func (s *store) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (s *store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}
