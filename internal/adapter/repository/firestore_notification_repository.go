package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
	"gigmarket/pkg/errors"
	"gigmarket/pkg/logger"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) messages(uid string) *firestore.CollectionRef {
	return r.client.Collection("Notifications").Doc(uid).Collection("messages")
}

func (r *firestoreNotificationRepository) Put(ctx context.Context, message *entity.NotificationMessage) error {
	_, err := r.messages(message.To).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.ServiceUnavailable("Failed to send notification", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) ListFor(ctx context.Context, uid string) ([]*entity.NotificationMessage, error) {
	iter := r.messages(uid).Documents(ctx)
	defer iter.Stop()

	messages := make([]*entity.NotificationMessage, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.ServiceUnavailable("Failed to load notifications", err)
		}

		var message entity.NotificationMessage
		if err := snap.DataTo(&message); err != nil {
			logger.Warn("Skipping unreadable notification %s/%s: %v", uid, snap.Ref.ID, err)
			continue
		}
		message.ID = snap.Ref.ID
		messages = append(messages, &message)
	}

	return messages, nil
}
