package dada

import (
	"encoding/json"
	"fmt"

	"samecity/internal/entities"
)

// Notifier adapts ParseNotification to the webhook parser contract.
type Notifier struct{}

func (Notifier) ParseNotification(body []byte) (entities.ProviderNotification, error) {
	return ParseNotification(body)
}

// ParseNotification decodes a callback body and maps it onto the canonical
// status set. Unsigned callbacks are rejected.
func ParseNotification(body []byte) (entities.ProviderNotification, error) {
	var cb Callback
	if err := json.Unmarshal(body, &cb); err != nil {
		return entities.ProviderNotification{}, fmt.Errorf("decode dada callback: %w", err)
	}

	if cb.Signature == "" || cb.Signature != CallbackSignature(cb.ClientID, cb.OrderID, cb.UpdateTime) {
		return entities.ProviderNotification{}, ErrBadSignature
	}

	status, ok := CanonicalStatus(cb.OrderStatus)
	if !ok {
		return entities.ProviderNotification{}, fmt.Errorf("%w: %d", ErrUnknownStatus, cb.OrderStatus)
	}

	return entities.ProviderNotification{
		Provider:          entities.StationDada,
		OriginID:          cb.OrderID,
		ProviderOrderCode: cb.ClientID,
		Status:            status,
		RawStatus:         cb.OrderStatus,
		CancelReason:      cb.CancelReason,
		CourierName:       cb.DmName,
		CourierPhone:      cb.DmMobile,
		DeductFee:         cb.DeductFee,
		FinishCode:        cb.FinishCode,
	}, nil
}
