package service

import (
	"errors"
	"fmt"
)

var (
	ErrQueryTypeMissing = errors.New("A 'Query type' must be selected.")
	ErrQueryTypeUnknown = fmt.Errorf("%w Unknown query type", ErrQueryTypeMissing)
	ErrInvalidTimeRange = errors.New("invalid time range")
)
