package models

import (
	"github.com/dmitrijs2005/lufa/internal/decode"
)

// ApiResponse is the envelope the backend wraps most JSON payloads in.
type ApiResponse[T any] struct {
	Success decode.TriBool `json:"success"`
	Data    *T             `json:"data"`
	Message *string        `json:"message"`
}
