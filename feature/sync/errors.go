package sync

import "errors"

var errUnknownProvider = errors.New("provider not registered")
