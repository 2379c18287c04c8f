package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
	"gigmarket/internal/infrastructure/ratelimit"
	"gigmarket/internal/infrastructure/telemetry"
	"gigmarket/pkg/config"
	"gigmarket/pkg/errors"
	"gigmarket/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	publisher        DecisionPublisher
	notifier         LiveNotifier
	limiter          ActionLimiter
	metrics          *telemetry.Metrics
	keyMode          string

	now   func() time.Time
	newID func() string
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	publisher DecisionPublisher,
	notifier LiveNotifier,
	limiter ActionLimiter,
	metrics *telemetry.Metrics,
	keyMode string,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		notifier:         notifier,
		limiter:          limiter,
		metrics:          metrics,
		keyMode:          keyMode,
		now:              time.Now,
		newID:            uuid.NewString,
	}
}

// messageKey picks the document key. In timestamp mode two dispatches to the
// same recipient within one millisecond share a key and the later one wins.
func (uc *NotificationUseCase) messageKey(timestamp int64) string {
	if uc.keyMode == config.NotificationKeyTimestamp {
		return strconv.FormatInt(timestamp, 10)
	}
	return uc.newID()
}

func (uc *NotificationUseCase) Dispatch(ctx context.Context, from, to string, decision entity.Decision) (*entity.NotificationMessage, error) {
	if !decision.Valid() {
		return nil, errors.BadRequest("decision must be accepted or rejected", nil)
	}
	if to == "" {
		return nil, errors.BadRequest("recipient is required", nil)
	}
	if from == to {
		return nil, errors.Forbidden("You cannot respond to your own gig", nil)
	}

	if uc.limiter != nil {
		if ok, wait := uc.limiter.Allow(from, ratelimit.ActionDispatchDecision); !ok {
			return nil, errors.TooManyRequests("Too many decisions", wait)
		}
	}

	timestamp := uc.now().UnixMilli()
	msg := &entity.NotificationMessage{
		ID:        uc.messageKey(timestamp),
		From:      from,
		To:        to,
		Type:      decision,
		Timestamp: timestamp,
	}

	if err := uc.notificationRepo.Put(ctx, msg); err != nil {
		return nil, err
	}
	uc.metrics.DecisionStored(string(decision))
	logger.Info("Decision stored: id=%s, from=%s, to=%s, type=%s", msg.ID, from, to, decision)

	if uc.publisher != nil {
		if err := uc.publisher.PublishDecision(ctx, msg); err != nil {
			logger.BestEffortFailure("publish", msg.ID, err)
		}
	}
	if uc.notifier != nil {
		if err := uc.notifier.PushDecision(msg); err != nil {
			logger.BestEffortFailure("push", msg.ID, err)
		}
	}

	return msg, nil
}

// ListFor returns the user's messages newest first; equal timestamps are
// ordered by ID ascending.
func (uc *NotificationUseCase) ListFor(ctx context.Context, uid string) ([]*entity.NotificationMessage, error) {
	messages, err := uc.notificationRepo.ListFor(ctx, uid)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].Timestamp != messages[j].Timestamp {
			return messages[i].Timestamp > messages[j].Timestamp
		}
		return messages[i].ID < messages[j].ID
	})

	return messages, nil
}
