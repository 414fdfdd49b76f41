package models

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid arguments")

	// ErrQuotaExceeded rejects an ingestion before any external call is made.
	ErrQuotaExceeded = errors.New("upload quota exceeded")

	// ErrTranscodeFailed aborts the whole attempt; nothing is persisted.
	ErrTranscodeFailed = errors.New("transcode failed")

	ErrNoCaptions          = errors.New("no captions available")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
