package repository

import (
	"context"
	"sync"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
)

type memoryNotificationRepository struct {
	mu    sync.RWMutex
	inbox map[string]map[string]entity.NotificationMessage
}

func NewMemoryNotificationRepository() repository.NotificationRepository {
	return &memoryNotificationRepository{
		inbox: make(map[string]map[string]entity.NotificationMessage),
	}
}

func (r *memoryNotificationRepository) Put(ctx context.Context, message *entity.NotificationMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	box, ok := r.inbox[message.To]
	if !ok {
		box = make(map[string]entity.NotificationMessage)
		r.inbox[message.To] = box
	}
	box[message.ID] = *message
	return nil
}

// ListFor returns messages in map order, which is unordered like the real store.
func (r *memoryNotificationRepository) ListFor(ctx context.Context, uid string) ([]*entity.NotificationMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.NotificationMessage, 0, len(r.inbox[uid]))
	for _, m := range r.inbox[uid] {
		msg := m
		result = append(result, &msg)
	}
	return result, nil
}
