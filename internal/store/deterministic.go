package store

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

func defaultIDFunc() string { return uuid.NewString() }

// idFunc generates scenario identifiers.
var idFunc = defaultIDFunc

// SetIDFunc overrides the identifier generator (use only in tests).
func SetIDFunc(f func() string) { idFunc = f }
