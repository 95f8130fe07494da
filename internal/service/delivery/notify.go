package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"samecity/internal/entities"
	"samecity/pkg/logger"
)

const (
	outcomeApplied = "applied"
	outcomeIgnored = "ignored"
	outcomeDropped = "dropped"
)

// Notify applies a normalized provider status update. Notifications for
// unknown deliveries are dropped without an error so the provider does not
// keep redelivering them. A terminal delivery ignores any later different
// status, while a replay of the same status is applied again. The delivered
// event is published once, after the commit that first completes the order.
func (d *Delivery) Notify(ctx context.Context, n entities.ProviderNotification) error {
	if !n.Status.Valid() {
		return ErrInvalidStatus
	}

	log := d.log.With(
		logger.NewField("provider", n.Provider.String()),
		logger.NewField("origin_id", n.OriginID),
		logger.NewField("status", n.Status.String()),
	)

	outcome := outcomeApplied
	var delivered *entities.DeliveredEvent

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.deliveryOrders.GetByOriginIDForUpdate(ctx, n.OriginID)
		if err != nil {
			if errors.Is(err, entities.ErrDeliveryOrderNotFound) {
				outcome = outcomeDropped
				return nil
			}
			return fmt.Errorf("get delivery order: %w", err)
		}

		if current.StationType != n.Provider {
			outcome = outcomeDropped
			return nil
		}

		if current.Status.IsTerminal() && current.Status != n.Status {
			outcome = outcomeIgnored
			return nil
		}

		modify := entities.DeliveryOrderModify{
			ID:     &current.ID,
			Status: &n.Status,
		}
		if n.ProviderOrderCode != "" && current.ProviderOrderCode == "" {
			modify.ProviderOrderCode = &n.ProviderOrderCode
		}
		if n.CancelReason != "" {
			modify.CancelReason = &n.CancelReason
		}
		if !n.DeductFee.IsZero() {
			modify.DeductFee = &n.DeductFee
		}
		if n.CourierName != "" {
			modify.CourierName = &n.CourierName
			modify.CourierPhone = &n.CourierPhone
		}
		if n.FinishCode != "" {
			modify.FinishCode = &n.FinishCode
		}

		if _, err := d.deliveryOrders.Update(ctx, modify); err != nil {
			return fmt.Errorf("update delivery order: %w", err)
		}

		order, err := d.applyToSalesOrder(ctx, current.OrderID, n)
		if err != nil {
			return err
		}

		firstCompletion := n.Status == entities.DeliveryCompleted && current.Status != entities.DeliveryCompleted
		if firstCompletion && order != nil {
			delivered = &entities.DeliveredEvent{
				OrderID:     order.ID,
				MerID:       order.MerID,
				OrderSN:     order.OrderSN,
				StationType: n.Provider.String(),
				DeliveredAt: d.now().UTC(),
			}
		}

		return d.writeLog(ctx, current.OrderID, entities.ChangeDeliveryNotify,
			notifyMessage(n),
			entities.Actor{Kind: entities.ActorSystem},
		)
	})
	if err != nil {
		return err
	}

	WebhookOutcomesTotal.WithLabelValues(n.Provider.String(), outcome).Inc()

	switch outcome {
	case outcomeDropped:
		log.Warn("notification for unknown delivery order dropped",
			logger.NewField("provider_order_code", n.ProviderOrderCode),
			logger.NewField("raw_status", n.RawStatus),
		)
		return nil
	case outcomeIgnored:
		log.Info("late notification for finished delivery order ignored")
		return nil
	}

	TransitionsTotal.WithLabelValues("notify", n.Status.String()).Inc()

	if delivered != nil {
		if err := d.publisher.PublishDelivered(ctx, *delivered); err != nil {
			log.Error("publish delivered event",
				logger.NewField("order_id", delivered.OrderID),
				logger.NewField("error", err),
			)
		}
	}
	return nil
}

// applyToSalesOrder moves the parent sales order along with the delivery.
// It returns nil when the sales order is left untouched.
func (d *Delivery) applyToSalesOrder(
	ctx context.Context,
	orderID int64,
	n entities.ProviderNotification,
) (*entities.SalesOrder, error) {
	modify := entities.SalesOrderModify{ID: &orderID}

	switch n.Status {
	case entities.DeliveryCompleted:
		modify.Status = pointer.To(entities.SalesAwaitingReview)
	case entities.DeliveryCancelled:
		modify.Status = pointer.To(entities.SalesAwaitingShipment)
	default:
		if n.CourierName == "" {
			return nil, nil
		}
	}

	if n.CourierName != "" {
		modify.CourierName = &n.CourierName
		modify.CourierPhone = &n.CourierPhone
	}

	order, err := d.salesOrders.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update sales order: %w", err)
	}
	return order, nil
}

func notifyMessage(n entities.ProviderNotification) string {
	msg := fmt.Sprintf("%s reported %s", n.Provider, n.Status)
	if n.StatusText != "" {
		msg += " (" + n.StatusText + ")"
	}
	if n.CancelReason != "" {
		msg += ": " + n.CancelReason
	}
	return msg
}
