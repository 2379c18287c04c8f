package repository

import (
	"context"
	"sync"

	"gigmarket/internal/domain/repository"
)

type memoryPreferenceRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPreferenceRepository() repository.PreferenceRepository {
	return &memoryPreferenceRepository{
		values: make(map[string]string),
	}
}

func (r *memoryPreferenceRepository) Get(ctx context.Context, uid, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[preferenceKey(uid, key)]
	return v, ok, nil
}

func (r *memoryPreferenceRepository) Set(ctx context.Context, uid, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[preferenceKey(uid, key)] = value
	return nil
}

func (r *memoryPreferenceRepository) Delete(ctx context.Context, uid, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, preferenceKey(uid, key))
	return nil
}
