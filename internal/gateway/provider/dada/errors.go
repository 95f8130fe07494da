package dada

import (
	"fmt"

	"samecity/internal/entities"
)

var (
	ErrBadSignature  = fmt.Errorf("dada: %w", entities.ErrCallbackSignature)
	ErrUnknownStatus = fmt.Errorf("dada: %w", entities.ErrCallbackStatus)
)
