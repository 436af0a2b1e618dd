package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidQuality is returned when quality parameter is invalid
	ErrInvalidQuality = errors.New("invalid quality (must be 1-100)")

	// ErrInvalidDimensions is returned for non-positive width or height
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrInvalidComponents is returned for unsupported component counts
	ErrInvalidComponents = errors.New("invalid number of components")

	// ErrBufferTooSmall is returned when pixel data or an output buffer is
	// shorter than required
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrUnsupportedFormat is returned when the format is not supported
	ErrUnsupportedFormat = errors.New("unsupported format")
)
