// Package metrics measures the error between an original image and its
// reconstruction.
//
// Differences are first binned into a 256-entry histogram of absolute
// per-channel sample differences; all statistics are then reduced from the
// histogram, so the per-pixel pass only increments integer counters.
package metrics

import (
	"errors"
	"fmt"

	"github.com/cocosip/go-jpeg-fidelity/codec"
)

// Comparison window: channels FirstChannel through FirstChannel+NumChannels-1
// of every pixel are compared.
const (
	NumChannels  = 3
	FirstChannel = 0
)

var (
	// ErrGeometryMismatch is returned when the compared images differ in
	// width or height.
	ErrGeometryMismatch = errors.New("image dimensions differ")

	// ErrTooFewComponents is returned when an image does not carry the
	// channels being compared.
	ErrTooFewComponents = errors.New("too few components for comparison")
)

// Histogram counts absolute sample differences; index i holds the number of
// samples that differ by exactly i.
type Histogram [256]uint64

// NewHistogram bins the absolute differences between a and b over the
// comparison window.
func NewHistogram(a, b *codec.Image) (*Histogram, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("original: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("reconstructed: %w", err)
	}
	if a.Width != b.Width || a.Height != b.Height {
		return nil, fmt.Errorf("%dx%d vs %dx%d: %w", a.Width, a.Height, b.Width, b.Height, ErrGeometryMismatch)
	}
	if a.Components < FirstChannel+NumChannels || b.Components < FirstChannel+NumChannels {
		return nil, fmt.Errorf("have %d and %d, need %d: %w",
			a.Components, b.Components, FirstChannel+NumChannels, ErrTooFewComponents)
	}

	var h Histogram
	strideA, strideB := a.Stride(), b.Stride()
	for y := 0; y < a.Height; y++ {
		rowA := a.PixelData[y*strideA : (y+1)*strideA]
		rowB := b.PixelData[y*strideB : (y+1)*strideB]
		for x := 0; x < a.Width; x++ {
			pa := rowA[x*a.Components+FirstChannel:]
			pb := rowB[x*b.Components+FirstChannel:]
			for c := 0; c < NumChannels; c++ {
				d := int32(pa[c]) - int32(pb[c])
				m := d >> 31
				h[(d^m)-m]++
			}
		}
	}
	return &h, nil
}

// Total returns the number of binned samples.
func (h *Histogram) Total() uint64 {
	var n uint64
	for _, v := range h {
		n += v
	}
	return n
}

// MaxError returns the largest difference with a non-zero count.
func (h *Histogram) MaxError() int {
	for i := len(h) - 1; i > 0; i-- {
		if h[i] != 0 {
			return i
		}
	}
	return 0
}
