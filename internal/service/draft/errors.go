package draft

import "errors"

var (
	ErrUnknownTarget      = errors.New("unknown location target")
	ErrUnknownPackageType = errors.New("unknown package type")
	ErrNotReadyForReview  = errors.New("draft is not at review step")
)
