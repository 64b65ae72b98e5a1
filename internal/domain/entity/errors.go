package entity

import "errors"

// Standard domain errors
var (
	ErrMalformedMappingEntry = errors.New("malformed food mapping entry")
	ErrMissingConfig         = errors.New("missing required configuration")
	ErrPredictionFailed      = errors.New("prediction service call failed")
	ErrMissingPhoto          = errors.New("no photo in upload")
	ErrPhotoTooLarge         = errors.New("photo exceeds upload size limit")
)
