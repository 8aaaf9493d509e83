package superfeedr

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTopic is returned when a feed url is not absolute; no request is sent
	ErrMalformedTopic = errors.New("superfeedr: topic provided is not an absolute url, request was not sent")

	// ErrMalformedCallback is returned when a callback url is not absolute; no request is sent
	ErrMalformedCallback = errors.New("superfeedr: callback provided is not an absolute url, request was not sent")
)

// ErrConfig is returned by New when a required credential is missing
type ErrConfig struct {
	Field string
}

func (e ErrConfig) Error() string {
	return fmt.Sprintf("superfeedr: %s must not be empty", e.Field)
}
