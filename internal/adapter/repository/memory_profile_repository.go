package repository

import (
	"context"
	"sort"
	"sync"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
	"gigmarket/pkg/errors"
)

// memoryProfileRepository keeps profiles in process. It backs DOCUMENT_STORE=memory
// and the use-case tests.
type memoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]map[string]entity.Profile
}

func NewMemoryProfileRepository() repository.ProfileRepository {
	return &memoryProfileRepository{
		profiles: map[string]map[string]entity.Profile{
			sellersCollection: {},
			buyersCollection:  {},
		},
	}
}

func (r *memoryProfileRepository) Get(ctx context.Context, role entity.Role, uid string) (*entity.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[CollectionFor(role)][uid]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return cloneProfile(p, role, uid), nil
}

func (r *memoryProfileRepository) Exists(ctx context.Context, role entity.Role, uid string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.profiles[CollectionFor(role)][uid]
	return ok, nil
}

func (r *memoryProfileRepository) Merge(ctx context.Context, role entity.Role, uid string, update entity.ProfileUpdate) error {
	if update.Empty() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	col := r.profiles[CollectionFor(role)]
	p := col[uid]
	update.Apply(&p)
	col[uid] = p
	return nil
}

func (r *memoryProfileRepository) Delete(ctx context.Context, role entity.Role, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.profiles[CollectionFor(role)], uid)
	return nil
}

func (r *memoryProfileRepository) FindByCity(ctx context.Context, role entity.Role, city string) ([]*entity.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Profile, 0)
	for uid, p := range r.profiles[CollectionFor(role)] {
		if p.Location != nil && p.Location.City == city {
			result = append(result, cloneProfile(p, role, uid))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func cloneProfile(p entity.Profile, role entity.Role, uid string) *entity.Profile {
	out := p
	out.ID = uid
	out.Role = role
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	return &out
}
