package domain

import (
	"errors"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedLoadSnapshot   = "failed to load snapshot"

	ErrParseUUID   = errors.New("failed to parse UUID")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
