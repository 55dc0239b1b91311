package handlers_test

import (
	"errors"
	"io"
	"log/slog"
)

// errServiceFailure stands in for arbitrary service-layer failures.
var errServiceFailure = errors.New("service failure")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
