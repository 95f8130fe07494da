package order_ready_to_ship

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"samecity/internal/entities"
	"samecity/internal/service/delivery"
	"samecity/pkg/logger"
)

type Handler struct {
	deliveryService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, deliveryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order.ready_to_ship"),
	)

	return &Handler{
		deliveryService:          deliveryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing returns true when ConsumeClaim must stop; the message is
// then left unmarked and redelivered after the rebalance.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event readyEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("bad ready-to-ship message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_id", event.OrderID),
		logger.NewField("sn", event.SN),
		logger.NewField("offset", message.Offset),
	)

	dispatched, err := h.deliveryService.Create(ctx, event.OrderID)
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		msgLog.With(
			logger.NewField("error", err),
		).Warn("context cancelled, message will be reprocessed")
		return true

	case errors.Is(err, delivery.ErrDeliveryOrderExists):
		msgLog.Info("delivery already exists, replay skipped")

	case errors.Is(err, entities.ErrNotFound), errors.Is(err, entities.ErrValidation):
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order cannot be dispatched")

	case err != nil:
		msgLog.With(
			logger.NewField("error", err),
		).Error("dispatch failed")

	case !dispatched:
		msgLog.Warn("provider refused dispatch, order flagged")

	default:
		msgLog.Info("order dispatched")
	}

	sess.MarkMessage(message, "")
	return false
}
