package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"samecity/internal/entities"
	"samecity/internal/geo"
	"samecity/pkg/logger"
)

type Delivery struct {
	deliveryOrders DeliveryOrderRepository
	salesOrders    SalesOrderRepository
	stations       StationRepository
	merchants      MerchantRepository
	statusLogs     StatusLogRepository
	providers      ProviderRegistry
	geocoder       Geocoder
	publisher      DeliveredPublisher
	txManager      TxManager
	log            logger.Logger
	now            func() time.Time
}

func New(
	deliveryOrders DeliveryOrderRepository,
	salesOrders SalesOrderRepository,
	stations StationRepository,
	merchants MerchantRepository,
	statusLogs StatusLogRepository,
	providers ProviderRegistry,
	geocoder Geocoder,
	publisher DeliveredPublisher,
	txManager TxManager,
	log logger.Logger,
) *Delivery {
	return &Delivery{
		deliveryOrders: deliveryOrders,
		salesOrders:    salesOrders,
		stations:       stations,
		merchants:      merchants,
		statusLogs:     statusLogs,
		providers:      providers,
		geocoder:       geocoder,
		publisher:      publisher,
		txManager:      txManager,
		log:            log.With(logger.NewField("service", "delivery")),
		now:            time.Now,
	}
}

// Create routes a sales order awaiting shipment through its bound station.
// A provider failure is recorded on the sales order and reported as
// (false, nil); nothing else is persisted in that case. Orders of a
// self-delivery station get a created delivery order and stay awaiting
// shipment until they are claimed or assigned.
func (d *Delivery) Create(ctx context.Context, orderID int64) (bool, error) {
	if !isValidID(orderID) {
		return false, ErrInvalidOrderID
	}

	order, err := d.salesOrders.GetByID(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("get sales order: %w", err)
	}

	if order.Status != entities.SalesAwaitingShipment {
		return false, ErrInvalidOrderStatus
	}

	station, err := d.boundStation(ctx, order)
	if err != nil {
		return false, err
	}

	previous, err := d.deliveryOrders.GetByOrderID(ctx, order.ID)
	if err != nil && !errors.Is(err, entities.ErrDeliveryOrderNotFound) {
		return false, fmt.Errorf("get delivery order: %w", err)
	}
	if previous != nil && previous.Status != entities.DeliveryCancelled {
		return false, ErrDeliveryOrderExists
	}

	destination, err := d.resolve(ctx, order.Address)
	if err != nil {
		return false, fmt.Errorf("resolve destination: %w", err)
	}

	var (
		dispatched bool
		originID   string
	)

	// Provider calls run under the sales-order row lock.
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := d.salesOrders.GetByIDForUpdate(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("get sales order: %w", err)
		}
		if locked.Status != entities.SalesAwaitingShipment {
			return ErrInvalidOrderStatus
		}

		current, err := d.deliveryOrders.GetByOrderIDForUpdate(ctx, locked.ID)
		if err != nil && !errors.Is(err, entities.ErrDeliveryOrderNotFound) {
			return fmt.Errorf("get delivery order: %w", err)
		}
		if current != nil && current.Status != entities.DeliveryCancelled {
			return ErrDeliveryOrderExists
		}

		req := entities.ProviderQuoteRequest{
			Station:     *station,
			Order:       *locked,
			OriginID:    d.originID(locked, current),
			Destination: destination,
			Distance:    geo.Distance(station.Location, destination),
		}
		originID = req.OriginID

		quote, providerCode, err := d.dispatch(ctx, d.providers.Get(station.Type), req)
		if err != nil {
			return d.recordDispatchFailure(ctx, locked, station, err)
		}

		modify := entities.DeliveryOrderModify{
			OrderID:           &locked.ID,
			MerID:             &locked.MerID,
			StationID:         &station.ID,
			StationType:       &station.Type,
			Status:            pointer.To(entities.DeliveryCreated),
			OriginID:          &req.OriginID,
			ProviderOrderCode: &providerCode,
			From:              &station.Location,
			To:                &destination,
			FromAddress:       &station.Address,
			ToAddress:         pointer.To(locked.Address.String()),
			Distance:          &quote.Distance,
			Fee:               &quote.Fee,
			CancelReason:      pointer.To(""),
		}

		if current != nil {
			modify.ID = &current.ID
			if _, err := d.deliveryOrders.Update(ctx, modify); err != nil {
				return fmt.Errorf("update delivery order: %w", err)
			}
		} else {
			if _, err := d.deliveryOrders.Create(ctx, modify); err != nil {
				return fmt.Errorf("create delivery order: %w", err)
			}
		}

		salesModify := entities.SalesOrderModify{
			ID:           &locked.ID,
			DeliveryType: pointer.To(entities.DeliveryTypeSameCity),
			SyncStatus:   pointer.To(entities.SyncOK),
			SyncDesc:     pointer.To(""),
		}
		message := "delivery order created, awaiting manual dispatch"
		if station.Type.IsProvider() {
			salesModify.Status = pointer.To(entities.SalesShipped)
			message = fmt.Sprintf("delivery order created via %s", station.Type)
		}

		if _, err := d.salesOrders.Update(ctx, salesModify); err != nil {
			return fmt.Errorf("update sales order: %w", err)
		}

		dispatched = true
		return d.writeLog(ctx, locked.ID, entities.ChangeDeliveryCreate, message,
			entities.Actor{Kind: entities.ActorSystem},
		)
	})
	if err != nil {
		return false, err
	}
	if !dispatched {
		return false, nil
	}

	TransitionsTotal.WithLabelValues("create", entities.DeliveryCreated.String()).Inc()
	d.log.Info("delivery order created",
		logger.NewField("order_id", order.ID),
		logger.NewField("provider", station.Type.String()),
		logger.NewField("origin_id", originID),
	)
	return true, nil
}

// SelfReceive lets one of the merchant's couriers claim an order.
func (d *Delivery) SelfReceive(ctx context.Context, serviceID, orderID int64) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(serviceID) {
		return ErrInvalidServiceID
	}

	return d.assign(ctx, assignment{
		orderID:    orderID,
		serviceID:  serviceID,
		mode:       entities.AssignClaimed,
		changeType: entities.ChangeDeliveryClaim,
		actor:      entities.Actor{Kind: entities.ActorService, ID: serviceID},
		claim:      true,
	})
}

// MerDispatch assigns an order to a courier chosen by the merchant.
func (d *Delivery) MerDispatch(ctx context.Context, req entities.DispatchRequest) error {
	if !isValidID(req.OrderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(req.ServiceID) {
		return ErrInvalidServiceID
	}

	return d.assign(ctx, assignment{
		orderID:      req.OrderID,
		merID:        req.MerID,
		serviceID:    req.ServiceID,
		courierName:  req.CourierName,
		courierPhone: req.CourierPhone,
		mode:         entities.AssignAssigned,
		changeType:   entities.ChangeDeliveryDispatch,
		actor:        req.Actor,
	})
}

// MerUpdateDispatch hands an order already with a courier to another one.
func (d *Delivery) MerUpdateDispatch(ctx context.Context, req entities.DispatchRequest) error {
	if !isValidID(req.OrderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(req.ServiceID) {
		return ErrInvalidServiceID
	}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.salesOrders.GetByIDForUpdate(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("get sales order: %w", err)
		}
		if !ownedBy(req.MerID, order.MerID) {
			return entities.ErrSalesOrderNotFound
		}
		if order.Status != entities.SalesShipped {
			return ErrInvalidOrderStatus
		}

		station, err := d.boundStation(ctx, order)
		if err != nil {
			return err
		}
		if station.Type.IsProvider() {
			return ErrStationBoundToProvider
		}

		current, err := d.deliveryOrders.GetByOrderIDForUpdate(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("get delivery order: %w", err)
		}
		if current.Status != entities.DeliveryInTransit {
			return ErrNotInTransit
		}

		_, err = d.deliveryOrders.Update(ctx, entities.DeliveryOrderModify{
			ID:           &current.ID,
			ServiceID:    &req.ServiceID,
			CourierName:  &req.CourierName,
			CourierPhone: &req.CourierPhone,
		})
		if err != nil {
			return fmt.Errorf("update delivery order: %w", err)
		}

		_, err = d.salesOrders.Update(ctx, entities.SalesOrderModify{
			ID:             &order.ID,
			EnableAssigned: pointer.To(entities.AssignAssigned),
			CourierName:    &req.CourierName,
			CourierPhone:   &req.CourierPhone,
		})
		if err != nil {
			return fmt.Errorf("update sales order: %w", err)
		}

		return d.writeLog(ctx, order.ID, entities.ChangeDeliveryRedispatch,
			fmt.Sprintf("courier changed to %d %s", req.ServiceID, req.CourierName),
			req.Actor,
		)
	})
	if err != nil {
		return err
	}

	TransitionsTotal.WithLabelValues("redispatch", entities.DeliveryInTransit.String()).Inc()
	return nil
}

// Cancel withdraws a delivery. Provider-backed orders are cancelled on the
// provider side first; local rows change only if that succeeds.
func (d *Delivery) Cancel(ctx context.Context, req entities.CancelRequest) error {
	if !isValidID(req.OrderID) {
		return ErrInvalidOrderID
	}

	current, err := d.deliveryOrders.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		return fmt.Errorf("get delivery order: %w", err)
	}
	if !ownedBy(req.MerID, current.MerID) {
		return entities.ErrDeliveryOrderNotFound
	}
	if err := validateCancel(current); err != nil {
		return err
	}

	if current.StationType.IsProvider() {
		station, err := d.stations.GetByID(ctx, current.StationID)
		if err != nil {
			return fmt.Errorf("get station: %w", err)
		}

		err = d.providers.Get(current.StationType).CancelOrder(ctx, entities.ProviderCancelRequest{
			Station:           *station,
			OriginID:          current.OriginID,
			ProviderOrderCode: current.ProviderOrderCode,
			ReasonID:          req.ReasonID,
			Reason:            req.Reason,
		})
		if err != nil {
			d.log.Warn("provider cancel failed",
				logger.NewField("order_id", current.OrderID),
				logger.NewField("provider", current.StationType.String()),
				logger.NewField("origin_id", current.OriginID),
				logger.NewField("error", err),
			)
			return fmt.Errorf("cancel on provider: %w", err)
		}
	}

	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := d.deliveryOrders.GetByOrderIDForUpdate(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("lock delivery order: %w", err)
		}
		if err := validateCancel(locked); err != nil {
			return err
		}

		_, err = d.deliveryOrders.Update(ctx, entities.DeliveryOrderModify{
			ID:           &locked.ID,
			Status:       pointer.To(entities.DeliveryCancelled),
			CancelReason: &req.Reason,
		})
		if err != nil {
			return fmt.Errorf("update delivery order: %w", err)
		}

		_, err = d.salesOrders.Update(ctx, entities.SalesOrderModify{
			ID:     &locked.OrderID,
			Status: pointer.To(entities.SalesAwaitingShipment),
		})
		if err != nil {
			return fmt.Errorf("update sales order: %w", err)
		}

		return d.writeLog(ctx, locked.OrderID, entities.ChangeDeliveryCancel,
			fmt.Sprintf("delivery cancelled: %s", req.Reason),
			req.Actor,
		)
	})
	if err != nil {
		return err
	}

	TransitionsTotal.WithLabelValues("cancel", entities.DeliveryCancelled.String()).Inc()
	d.log.Info("delivery order cancelled",
		logger.NewField("order_id", current.OrderID),
		logger.NewField("provider", current.StationType.String()),
	)
	return nil
}

// Confirm marks a sales order as received by the customer.
func (d *Delivery) Confirm(ctx context.Context, orderID int64, actor entities.Actor) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.salesOrders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get sales order: %w", err)
		}
		if order.Status == entities.SalesAwaitingReview {
			return ErrAlreadyConfirmed
		}

		current, err := d.deliveryOrders.GetByOrderIDForUpdate(ctx, order.ID)
		if err != nil && !errors.Is(err, entities.ErrDeliveryOrderNotFound) {
			return fmt.Errorf("get delivery order: %w", err)
		}

		if current != nil && !current.Status.IsTerminal() {
			_, err = d.deliveryOrders.Update(ctx, entities.DeliveryOrderModify{
				ID:     &current.ID,
				Status: pointer.To(entities.DeliveryCompleted),
			})
			if err != nil {
				return fmt.Errorf("update delivery order: %w", err)
			}
		}

		_, err = d.salesOrders.Update(ctx, entities.SalesOrderModify{
			ID:     &order.ID,
			Status: pointer.To(entities.SalesAwaitingReview),
		})
		if err != nil {
			return fmt.Errorf("update sales order: %w", err)
		}

		return d.writeLog(ctx, order.ID, entities.ChangeDeliveryConfirm, "delivery confirmed", actor)
	})
	if err != nil {
		return err
	}

	TransitionsTotal.WithLabelValues("confirm", entities.DeliveryCompleted.String()).Inc()
	return nil
}

// Destroy removes a delivery order that is no longer active.
func (d *Delivery) Destroy(ctx context.Context, merID, orderID int64) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}

	return d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.deliveryOrders.GetByOrderIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get delivery order: %w", err)
		}
		if !ownedBy(merID, current.MerID) {
			return entities.ErrDeliveryOrderNotFound
		}
		if !current.Status.IsTerminal() {
			return ErrDeliveryOrderActive
		}

		if err := d.deliveryOrders.Delete(ctx, current.ID); err != nil {
			return fmt.Errorf("delete delivery order: %w", err)
		}

		return d.writeLog(ctx, orderID, entities.ChangeDeliveryDestroy, "delivery order removed",
			entities.Actor{Kind: entities.ActorAdmin, ID: merID},
		)
	})
}

func (d *Delivery) Detail(ctx context.Context, merID, orderID int64) (*entities.DeliveryOrder, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := d.deliveryOrders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get delivery order: %w", err)
	}
	if !ownedBy(merID, order.MerID) {
		return nil, entities.ErrDeliveryOrderNotFound
	}
	return order, nil
}

// CountDispatchFailures reports sales orders left with a failed provider
// dispatch.
func (d *Delivery) CountDispatchFailures(ctx context.Context) (int64, error) {
	count, err := d.salesOrders.CountDispatchFailures(ctx)
	if err != nil {
		return 0, fmt.Errorf("count dispatch failures: %w", err)
	}
	PendingDispatchFailures.Set(float64(count))
	return count, nil
}

type assignment struct {
	orderID      int64
	merID        int64
	serviceID    int64
	courierName  string
	courierPhone string
	mode         entities.AssignMode
	changeType   entities.ChangeType
	actor        entities.Actor
	claim        bool
}

func (d *Delivery) assign(ctx context.Context, a assignment) error {
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.salesOrders.GetByIDForUpdate(ctx, a.orderID)
		if err != nil {
			return fmt.Errorf("get sales order: %w", err)
		}
		if !ownedBy(a.merID, order.MerID) {
			return entities.ErrSalesOrderNotFound
		}
		if order.Status != entities.SalesAwaitingShipment {
			return ErrInvalidOrderStatus
		}

		if a.claim {
			if err := d.checkClaimEnabled(ctx, order.MerID); err != nil {
				return err
			}
		}

		station, err := d.boundStation(ctx, order)
		if err != nil {
			return err
		}
		if station.Type.IsProvider() {
			return ErrStationBoundToProvider
		}

		current, err := d.deliveryOrders.GetByOrderIDForUpdate(ctx, order.ID)
		if err != nil && !errors.Is(err, entities.ErrDeliveryOrderNotFound) {
			return fmt.Errorf("get delivery order: %w", err)
		}

		modify := entities.DeliveryOrderModify{
			Status:       pointer.To(entities.DeliveryInTransit),
			ServiceID:    &a.serviceID,
			CourierName:  &a.courierName,
			CourierPhone: &a.courierPhone,
			CancelReason: pointer.To(""),
		}

		if current != nil {
			if current.Status == entities.DeliveryCompleted {
				return ErrAlreadyCompleted
			}
			modify.ID = &current.ID
			if _, err := d.deliveryOrders.Update(ctx, modify); err != nil {
				return fmt.Errorf("update delivery order: %w", err)
			}
		} else {
			modify.OrderID = &order.ID
			modify.MerID = &order.MerID
			modify.StationID = &station.ID
			modify.StationType = &station.Type
			modify.OriginID = &order.OrderSN
			modify.From = &station.Location
			modify.FromAddress = &station.Address
			modify.ToAddress = pointer.To(order.Address.String())
			if order.Address.Point != nil {
				modify.To = order.Address.Point
				modify.Distance = pointer.To(geo.Distance(station.Location, *order.Address.Point))
			}
			if _, err := d.deliveryOrders.Create(ctx, modify); err != nil {
				return fmt.Errorf("create delivery order: %w", err)
			}
		}

		_, err = d.salesOrders.Update(ctx, entities.SalesOrderModify{
			ID:             &order.ID,
			Status:         pointer.To(entities.SalesShipped),
			DeliveryType:   pointer.To(entities.DeliveryTypeSameCity),
			EnableAssigned: &a.mode,
			CourierName:    &a.courierName,
			CourierPhone:   &a.courierPhone,
		})
		if err != nil {
			return fmt.Errorf("update sales order: %w", err)
		}

		return d.writeLog(ctx, order.ID, a.changeType,
			fmt.Sprintf("delivery assigned to courier %d", a.serviceID),
			a.actor,
		)
	})
	if err != nil {
		return err
	}

	TransitionsTotal.WithLabelValues(string(a.changeType), entities.DeliveryInTransit.String()).Inc()
	return nil
}

func (d *Delivery) checkClaimEnabled(ctx context.Context, merID int64) error {
	cfg, err := d.merchants.GetConfig(ctx, merID)
	if err != nil {
		if errors.Is(err, entities.ErrMerchantConfigNotFound) {
			return ErrCourierClaimDisabled
		}
		return fmt.Errorf("get merchant config: %w", err)
	}
	if !cfg.CourierClaimEnabled {
		return ErrCourierClaimDisabled
	}
	return nil
}

func (d *Delivery) boundStation(ctx context.Context, order *entities.SalesOrder) (*entities.DeliveryStation, error) {
	if !isValidID(order.StationID) {
		return nil, ErrStationNotBound
	}

	station, err := d.stations.GetByID(ctx, order.StationID)
	if err != nil {
		return nil, fmt.Errorf("get station: %w", err)
	}
	if station.MerID != order.MerID {
		return nil, entities.ErrStationNotFound
	}
	return station, nil
}

func (d *Delivery) resolve(ctx context.Context, address geo.Address) (geo.Point, error) {
	if address.Point != nil && !address.Point.IsZero() {
		return *address.Point, nil
	}
	return d.geocoder.Resolve(ctx, address)
}

// originID is the id the provider knows the delivery by. A sales order
// dispatched again after a cancellation needs a fresh one.
func (d *Delivery) originID(order *entities.SalesOrder, previous *entities.DeliveryOrder) string {
	if previous == nil {
		return order.OrderSN
	}
	return fmt.Sprintf("%s-%d", order.OrderSN, d.now().Unix())
}

func (d *Delivery) dispatch(
	ctx context.Context,
	provider Provider,
	req entities.ProviderQuoteRequest,
) (*entities.ProviderQuote, string, error) {
	quote, err := provider.QuotePrice(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("quote price: %w", err)
	}

	code, err := provider.CreateOrder(ctx, *quote)
	if err != nil {
		return nil, "", fmt.Errorf("create provider order: %w", err)
	}
	return quote, code, nil
}

func (d *Delivery) recordDispatchFailure(
	ctx context.Context,
	order *entities.SalesOrder,
	station *entities.DeliveryStation,
	cause error,
) error {
	DispatchFailuresTotal.WithLabelValues(station.Type.String()).Inc()
	d.log.Warn("provider dispatch failed",
		logger.NewField("order_id", order.ID),
		logger.NewField("provider", station.Type.String()),
		logger.NewField("error", cause),
	)

	_, err := d.salesOrders.Update(ctx, entities.SalesOrderModify{
		ID:         &order.ID,
		SyncStatus: pointer.To(entities.SyncFailed),
		SyncDesc:   pointer.To(cause.Error()),
	})
	if err != nil {
		return fmt.Errorf("record dispatch failure: %w", err)
	}
	return nil
}

func (d *Delivery) writeLog(
	ctx context.Context,
	orderID int64,
	changeType entities.ChangeType,
	message string,
	actor entities.Actor,
) error {
	_, err := d.statusLogs.Create(ctx, entities.OrderStatusLog{
		OrderID:       orderID,
		ChangeType:    changeType,
		ChangeMessage: message,
		Actor:         actor,
	})
	if err != nil {
		return fmt.Errorf("write status log: %w", err)
	}
	return nil
}
