package repository

import (
	"context"

	"gigmarket/internal/domain/entity"
)

type NotificationRepository interface {
	// Put writes message under its recipient using message.ID as the key,
	// replacing any message already stored under that key.
	Put(ctx context.Context, message *entity.NotificationMessage) error

	// ListFor returns the recipient's messages in storage order.
	ListFor(ctx context.Context, uid string) ([]*entity.NotificationMessage, error)
}
