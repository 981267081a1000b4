package address_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/persona/internal/core/address"
	"github.com/taibuivan/persona/internal/platform/apperr"
)

// memoryRepository is an in-memory [address.Repository]. Only ids listed in
// personals satisfy the profile reference.
type memoryRepository struct {
	mu        sync.Mutex
	nextID    int64
	personals map[int64]bool
	rows      map[int64]address.Address
}

func newMemoryRepository(personalIDs ...int64) *memoryRepository {
	personals := map[int64]bool{}
	for _, id := range personalIDs {
		personals[id] = true
	}
	return &memoryRepository{nextID: 1, personals: personals, rows: map[int64]address.Address{}}
}

func (repository *memoryRepository) sorted() []address.Address {
	all := make([]address.Address, 0, len(repository.rows))
	for _, row := range repository.rows {
		all = append(all, row)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (repository *memoryRepository) List(_ context.Context, limit, offset int) ([]*address.Address, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	all := repository.sorted()
	page := []*address.Address{}
	for index := offset; index < len(all) && len(page) < limit; index++ {
		row := all[index]
		page = append(page, &row)
	}
	return page, len(all), nil
}

func (repository *memoryRepository) ListByPersonal(_ context.Context, personalID int64) ([]*address.Address, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	owned := []*address.Address{}
	for _, row := range repository.sorted() {
		if row.PersonalID == personalID {
			owned = append(owned, &row)
		}
	}
	return owned, nil
}

func (repository *memoryRepository) Get(_ context.Context, id int64) (*address.Address, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	row, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound("Address")
	}
	return &row, nil
}

func (repository *memoryRepository) Create(_ context.Context, a *address.Address) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if !repository.personals[a.PersonalID] {
		return apperr.BadRequest("Referenced record does not exist")
	}

	now := time.Now().UTC()
	a.ID, a.CreatedAt, a.UpdatedAt = repository.nextID, now, now
	repository.nextID++
	repository.rows[a.ID] = *a
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, a *address.Address) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.rows[a.ID]
	if !ok {
		return apperr.NotFound("Address")
	}
	if !repository.personals[a.PersonalID] {
		return apperr.BadRequest("Referenced record does not exist")
	}

	a.CreatedAt, a.UpdatedAt = existing.CreatedAt, time.Now().UTC()
	repository.rows[a.ID] = *a
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[id]; !ok {
		return apperr.NotFound("Address")
	}
	delete(repository.rows, id)
	return nil
}
