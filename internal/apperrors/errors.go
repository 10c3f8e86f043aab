package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRemoteFetchFailed indicates that the remote rates API could not serve a request.
var ErrRemoteFetchFailed = errors.New("remote fetch failed")

// ErrLocalFetchFailed indicates that the local store could not be read.
var ErrLocalFetchFailed = errors.New("local fetch failed")

// ErrSaveFailed indicates that writing a snapshot to the local store failed.
// Cache repositories swallow it after a successful remote fetch; it is only logged.
var ErrSaveFailed = errors.New("save failed")

// ErrNoDataAvailable indicates that neither the remote source nor the local store had data.
var ErrNoDataAvailable = errors.New("no data available")

// ErrRateUnavailableForBaseCurrency indicates that the selected base currency has no quote.
var ErrRateUnavailableForBaseCurrency = errors.New("rate unavailable for base currency")

// RepositoryError is returned by the cache repositories and their adapters.
// Kind is one of the repository sentinels above, Err is the underlying cause.
type RepositoryError struct {
	Op   string // cache domain, "currencies" or "quotes"
	Kind error
	Err  error
}

func (e *RepositoryError) Error() string {
	switch e.Kind {
	case ErrRemoteFetchFailed:
		return fmt.Sprintf("remote fetch %s failed: %v", e.Op, e.Err)
	case ErrLocalFetchFailed:
		return fmt.Sprintf("local fetch %s failed: %v", e.Op, e.Err)
	case ErrSaveFailed:
		return fmt.Sprintf("save %s failed: %v", e.Op, e.Err)
	case ErrNoDataAvailable:
		return fmt.Sprintf("no %s fetched", e.Op)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Is matches the error kind so callers can use errors.Is with the sentinels.
func (e *RepositoryError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// NewRemoteFetchError wraps a remote source failure.
func NewRemoteFetchError(op string, err error) error {
	return &RepositoryError{Op: op, Kind: ErrRemoteFetchFailed, Err: err}
}

// NewLocalFetchError wraps a local store read failure.
func NewLocalFetchError(op string, err error) error {
	return &RepositoryError{Op: op, Kind: ErrLocalFetchFailed, Err: err}
}

// NewSaveError wraps a local store write failure.
func NewSaveError(op string, err error) error {
	return &RepositoryError{Op: op, Kind: ErrSaveFailed, Err: err}
}

// NewNoDataError reports that no data could be obtained for the cache domain.
func NewNoDataError(op string) error {
	return &RepositoryError{Op: op, Kind: ErrNoDataAvailable}
}

// RateUnavailableError is returned by the conversion engine when the base
// currency has no quote in the rate table.
type RateUnavailableError struct {
	CurrencyID string
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("the exchange rate for %s is not available", e.CurrencyID)
}

func (e *RateUnavailableError) Is(target error) bool {
	return target == ErrRateUnavailableForBaseCurrency
}
