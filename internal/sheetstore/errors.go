package sheetstore

import (
	"errors"
	"fmt"
)

// Sentinel reasons callers can test with errors.Is. The old version of
// this layer collapsed everything into a boolean success flag; handlers
// need to tell "the backend is gone" apart from "that row does not exist".
var (
	// ErrNotConnected marks connectivity or credential failures: revoked
	// service account key, sheet not shared with the client email, network
	// down. The app keeps serving and shows guidance instead of crashing.
	ErrNotConnected = errors.New("sheet backend not reachable")

	// ErrNotFound is returned by Find, Update and Delete when no row
	// matches the key.
	ErrNotFound = errors.New("record not found")

	// ErrWriteRejected marks a write the backend refused (quota, protected
	// range, malformed request).
	ErrWriteRejected = errors.New("write rejected by backend")
)

// StoreError carries the tab and operation alongside the underlying
// reason so a single log line is enough to locate a failure.
type StoreError struct {
	Tab string
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("sheetstore: %s %s: %v", e.Op, e.Tab, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func opErr(op, tab string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Tab: tab, Op: op, Err: err}
}
