package geo

import (
	"encoding/json"
	"fmt"
)

// storedFence is the persisted form of a fence: {"type": ..., "payload": {...}}.
type storedFence struct {
	Type    FenceType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type fenceDecoder func(payload json.RawMessage) (Fence, error)

var fenceDecoders = map[FenceType]fenceDecoder{
	FencePolygon:   decodeAs[Polygon],
	FenceCircle:    decodeAs[Circle],
	FenceRectangle: decodeAs[Rectangle],
	FenceEllipse:   decodeAs[Ellipse],
}

func decodeAs[T Fence](payload json.RawMessage) (Fence, error) {
	var f T
	if err := json.Unmarshal(payload, &f); err != nil {
		return nil, err
	}
	return f, nil
}

func DecodeFence(fenceType FenceType, payload json.RawMessage) (Fence, error) {
	decode, ok := fenceDecoders[fenceType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFenceType, fenceType)
	}

	f, err := decode(payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s fence: %w", fenceType, err)
	}
	return f, nil
}

// EncodeFence returns the payload half of the persisted form.
func EncodeFence(f Fence) (json.RawMessage, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode %s fence: %w", f.Type(), err)
	}
	return payload, nil
}

func MarshalFences(fences []Fence) ([]byte, error) {
	stored := make([]storedFence, 0, len(fences))
	for _, f := range fences {
		payload, err := EncodeFence(f)
		if err != nil {
			return nil, err
		}
		stored = append(stored, storedFence{Type: f.Type(), Payload: payload})
	}
	return json.Marshal(stored)
}

func UnmarshalFences(data []byte) ([]Fence, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var stored []storedFence
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode fences: %w", err)
	}

	fences := make([]Fence, 0, len(stored))
	for _, s := range stored {
		f, err := DecodeFence(s.Type, s.Payload)
		if err != nil {
			return nil, err
		}
		fences = append(fences, f)
	}
	return fences, nil
}
