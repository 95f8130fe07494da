package uu

import (
	"fmt"

	"samecity/internal/entities"
)

var (
	ErrBadSignature  = fmt.Errorf("uu: %w", entities.ErrCallbackSignature)
	ErrUnknownStatus = fmt.Errorf("uu: %w", entities.ErrCallbackStatus)
)
