package uu

import (
	"encoding/json"
	"fmt"
	"strconv"

	"samecity/internal/entities"
)

// Notifier verifies and decodes UU callbacks; the signature is keyed with
// the app key.
type Notifier struct {
	appKey string
}

func NewNotifier(appKey string) *Notifier {
	return &Notifier{appKey: appKey}
}

func (n *Notifier) ParseNotification(body []byte) (entities.ProviderNotification, error) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return entities.ProviderNotification{}, fmt.Errorf("decode uu callback: %w", err)
	}

	var cb Callback
	if err := json.Unmarshal(body, &cb); err != nil {
		return entities.ProviderNotification{}, fmt.Errorf("decode uu callback: %w", err)
	}

	if cb.Sign == "" || cb.Sign != sign(n.appKey, stringify(fields)) {
		return entities.ProviderNotification{}, ErrBadSignature
	}

	raw, err := strconv.Atoi(string(cb.State))
	if err != nil {
		return entities.ProviderNotification{}, fmt.Errorf("%w: %q", ErrUnknownStatus, cb.State)
	}

	status, ok := CanonicalStatus(raw)
	if !ok {
		return entities.ProviderNotification{}, fmt.Errorf("%w: %d", ErrUnknownStatus, raw)
	}

	return entities.ProviderNotification{
		Provider:          entities.StationUU,
		OriginID:          cb.OriginID,
		ProviderOrderCode: cb.OrderCode,
		Status:            status,
		RawStatus:         raw,
		StatusText:        cb.StateText,
		CancelReason:      cb.CancelReason,
		CourierName:       cb.DriverName,
		CourierPhone:      cb.DriverMobile,
		DeductFee:         cb.DeductFee,
	}, nil
}

func stringify(fields map[string]any) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			out[k] = val
		case nil:
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
