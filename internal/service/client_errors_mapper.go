// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package service

import (
	"errors"
	"fmt"

	"github.com/savrasovpm/go-pantry-keeper/internal/adapter"
)

// mapAuthError translates gateway transport errors into the session error
// taxonomy. A rejected credential pair (401, or a 4xx validation answer on
// the auth endpoints) becomes ErrInvalidCredentials; anything that kept the
// server from answering properly becomes ErrServerUnavailable.
func mapAuthError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrValidation):
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, adapter.ErrServer):
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	default:
		return err
	}
}
