package weight

import "errors"

var (
	// ErrParse indicates a textual weight could not be decoded.
	ErrParse = errors.New("weight: cannot parse weight")

	// ErrDecode indicates a binary weight stream was truncated or malformed.
	ErrDecode = errors.New("weight: cannot decode weight")
)
