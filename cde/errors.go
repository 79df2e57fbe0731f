package cde

import "errors"

// ErrUnknownHazard is returned when an operation names a hazard entity that
// isn't currently registered.
var ErrUnknownHazard = errors.New("cde: unknown hazard entity")

// ErrAlreadyRegistered is returned when RegisterHazard is called twice for
// the same entity without an intervening deregister.
var ErrAlreadyRegistered = errors.New("cde: hazard already registered")
