package common

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
var ErrNotFound = errors.New("not found")
var ErrMalformedInput = errors.New("malformed input")
