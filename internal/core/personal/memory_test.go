package personal_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/persona/internal/core/personal"
	"github.com/taibuivan/persona/internal/platform/apperr"
)

// memoryRepository is an in-memory [personal.Repository].
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]personal.Personal
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{nextID: 1, rows: map[int64]personal.Personal{}}
}

func (repository *memoryRepository) sorted() []personal.Personal {
	all := make([]personal.Personal, 0, len(repository.rows))
	for _, row := range repository.rows {
		all = append(all, row)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (repository *memoryRepository) List(_ context.Context, limit, offset int) ([]*personal.Personal, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	all := repository.sorted()
	page := []*personal.Personal{}
	for index := offset; index < len(all) && len(page) < limit; index++ {
		row := all[index]
		page = append(page, &row)
	}
	return page, len(all), nil
}

func (repository *memoryRepository) ListByUser(_ context.Context, userID int64) ([]*personal.Personal, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	owned := []*personal.Personal{}
	for _, row := range repository.sorted() {
		if row.UserID == userID {
			owned = append(owned, &row)
		}
	}
	return owned, nil
}

func (repository *memoryRepository) Get(_ context.Context, id int64) (*personal.Personal, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	row, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound("Personal")
	}
	return &row, nil
}

func (repository *memoryRepository) Create(_ context.Context, p *personal.Personal) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	now := time.Now().UTC()
	p.ID, p.CreatedAt, p.UpdatedAt = repository.nextID, now, now
	repository.nextID++
	repository.rows[p.ID] = *p
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, p *personal.Personal) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.rows[p.ID]
	if !ok {
		return apperr.NotFound("Personal")
	}
	p.CreatedAt, p.UpdatedAt = existing.CreatedAt, time.Now().UTC()
	repository.rows[p.ID] = *p
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[id]; !ok {
		return apperr.NotFound("Personal")
	}
	delete(repository.rows, id)
	return nil
}
