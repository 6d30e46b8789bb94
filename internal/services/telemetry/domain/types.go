// Package domain holds scan telemetry types and ports
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Code tags a recorded scan with its resolved category
type Code string

// Scan event codes
const (
	CodeDeeplink      Code = "deeplink"
	CodeDapp          Code = "dapp"
	CodeLogin         Code = "log_in"
	CodeCryptoAddress Code = "crypto_address"
	CodeInvalid       Code = "invalid"
)

// Event is one recorded scan outcome
type Event struct {
	ID         uuid.UUID
	At         time.Time
	Code       Code
	Deeplinked bool
}
