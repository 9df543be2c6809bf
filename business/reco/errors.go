package reco

import "errors"

// Input errors. These are the only errors Recommend/LogClick return to the
// caller; every source-side failure degrades instead.
var (
	ErrUserRequired    = errors.New("user_id is required")
	ErrUnknownUser     = errors.New("user not found")
	ErrInvalidType     = errors.New("invalid recommendation type")
	ErrProductRequired = errors.New("product_id is required")
)
