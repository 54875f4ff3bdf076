package varwire

import "errors"

var (
	// ErrTruncated reports input that ended before a terminating byte
	// (continuation bit clear) was seen.
	ErrTruncated = errors.New("varwire: truncated variable-length integer")
	// ErrOverlong reports input that reached the maximum encoded length
	// for the target width without terminating.
	ErrOverlong = errors.New("varwire: variable-length integer is too long")
)
