package noticeboard

import (
	"fmt"

	"github.com/friendsofgo/errors"
)

// FetchError is returned when the fetcher fails to retrieve the notice set.
// The displayed list is cleared whenever a FetchError is recorded.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return "fetch notices"
	}
	return "fetch notices: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is, or wraps, a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// InvalidPageError is returned when a page number below 1 is requested.
type InvalidPageError struct {
	Requested int
}

func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("requested page %d is invalid; pages start at 1", e.Requested)
}

// Status describes the outcome of the last applied fetch.
type Status int

const (
	// StatusIdle means no fetch has resolved yet.
	StatusIdle Status = iota

	// StatusReady means notices matched and are displayable.
	StatusReady

	// StatusEmptyCollection means no notices exist and no keyword is applied.
	StatusEmptyCollection

	// StatusEmptySearch means notices may exist but none matched the keyword.
	StatusEmptySearch

	// StatusFetchFailed means the last fetch returned a FetchError.
	StatusFetchFailed
)

const (
	messageEmptyCollection = "no records exist"
	messageEmptySearch     = "no results for '%s'"
	messageFetchFailed     = "unable to load notices"
)

// ResolveStatus classifies a filtered result for the applied keyword.
func ResolveStatus(matched int, keyword string) Status {
	switch {
	case matched > 0:
		return StatusReady
	case keyword == "":
		return StatusEmptyCollection
	default:
		return StatusEmptySearch
	}
}

// Message returns the user-facing message for the status.
// Idle and ready statuses have no message.
func (s Status) Message(keyword string) string {
	switch s {
	case StatusEmptyCollection:
		return messageEmptyCollection
	case StatusEmptySearch:
		return fmt.Sprintf(messageEmptySearch, keyword)
	case StatusFetchFailed:
		return messageFetchFailed
	default:
		return ""
	}
}

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusReady:
		return "ready"
	case StatusEmptyCollection:
		return "empty_collection"
	case StatusEmptySearch:
		return "empty_search"
	case StatusFetchFailed:
		return "fetch_failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
