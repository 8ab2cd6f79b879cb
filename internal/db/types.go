package db

import (
	"errors"
)

// ErrorInvalidRequest is a user facing error returned by repositories.
var ErrorInvalidRequest = errors.New("invalid request")

// ErrorNotFound is returned by repositories when no record matches a lookup.
var ErrorNotFound = errors.New("not found")
