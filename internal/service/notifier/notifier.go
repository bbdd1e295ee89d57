package notifier

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type Notifier struct {
	repository Repository
	publisher  Publisher
	templates  TemplateFactory
	clock      Clock
	log        logger.Logger
}

func New(repository Repository, publisher Publisher, templates TemplateFactory, clock Clock, log logger.Logger) *Notifier {
	return &Notifier{
		repository: repository,
		publisher:  publisher,
		templates:  templates,
		clock:      clock,
		log:        log.With(logger.NewField("component", "notifier")),
	}
}

// Fanout сохраняет по одному уведомлению на участника и публикует их.
// Ошибка публикации логируется и не прерывает рассылку остальным.
// Повторная доставка того же перехода дает те же id уведомлений.
func (n *Notifier) Fanout(ctx context.Context, transition entities.OrderTransition) ([]entities.Notification, error) {
	template, err := n.templates.GetTemplate(transition.Event)
	if err != nil {
		return nil, err
	}

	recipients := Recipients(transition)
	if len(recipients) == 0 {
		return nil, nil
	}

	now := n.clock.Now()
	orderID := transition.Order.ID
	notifications := make([]entities.Notification, 0, len(recipients))
	for _, r := range recipients {
		notifications = append(notifications, entities.Notification{
			ID:            notificationID(transition.ID, r),
			RecipientID:   r.ID,
			RecipientRole: r.Role,
			OrderID:       &orderID,
			Event:         transition.Event,
			Message:       template(transition, r),
			CreatedAt:     now,
		})
	}

	err = n.repository.CreateBatch(ctx, notifications)
	if err != nil {
		return nil, fmt.Errorf("store notifications: %w", err)
	}

	for _, notification := range notifications {
		notificationsEmitted.WithLabelValues(transition.Event.String(), notification.RecipientRole.String()).Inc()

		err = n.publisher.Publish(ctx, notification)
		if err != nil {
			notificationPublishFailures.WithLabelValues(notification.RecipientRole.String()).Inc()
			n.log.Warn("publish notification failed",
				logger.NewField("order", orderID.String()),
				logger.NewField("recipient", notification.RecipientID),
				logger.NewField("role", notification.RecipientRole.String()),
				logger.NewField("error", err),
			)
		}
	}

	return notifications, nil
}

// notificationID детерминирован по переходу и адресату.
func notificationID(transitionID uuid.UUID, r entities.Recipient) uuid.UUID {
	return uuid.NewSHA1(transitionID, []byte(r.Role.String()+":"+r.ID))
}

func (n *Notifier) List(ctx context.Context, actor entities.Actor, unreadOnly bool, limit uint64) ([]entities.Notification, error) {
	if limit == 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	notifications, err := n.repository.ListByRecipient(ctx, entities.Recipient{ID: actor.ID, Role: actor.Role}, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead отмечает уведомление прочитанным. Отметить может только адресат.
func (n *Notifier) MarkRead(ctx context.Context, actor entities.Actor, id uuid.UUID) (*entities.Notification, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidNotificationID
	}

	notification, err := n.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}

	if notification.RecipientID != actor.ID || notification.RecipientRole != actor.Role {
		return nil, fmt.Errorf("%w: %w", entities.ErrForbidden, ErrNotificationNotAssigned)
	}
	if notification.Read {
		return notification, nil
	}

	updated, err := n.repository.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return updated, nil
}
