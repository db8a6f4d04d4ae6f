package lqueue

import "errors"

// ErrInvalidGroupSize indicates a group size smaller than 1 was passed to ReverseK.
var ErrInvalidGroupSize = errors.New("invalid group size")
