package metrics

import (
	"fmt"
	"math"

	"github.com/cocosip/go-jpeg-fidelity/codec"
)

const (
	// PeakValue is the largest 8-bit sample value.
	PeakValue = 255.0

	// PerfectPSNR is reported when the reconstruction has no error at all.
	PerfectPSNR = 1e10
)

// Metrics summarizes a Histogram.
type Metrics struct {
	MaxError    int     `json:"max_error"`
	Mean        float64 `json:"mean"`
	MeanSquared float64 `json:"mean_squared"`
	RMSE        float64 `json:"rmse"`
	PSNR        float64 `json:"psnr"`
}

// String renders the metrics on one line.
func (m Metrics) String() string {
	return fmt.Sprintf("Error Max: %f, Mean: %f, Mean^2: %f, RMSE: %f, PSNR: %f",
		float64(m.MaxError), m.Mean, m.MeanSquared, m.RMSE, m.PSNR)
}

type options struct {
	averageChannels bool
}

// Option configures Compute.
type Option func(*options)

// WithChannelAveraging divides by width*height*NumChannels instead of
// width*height. Without it, sums over all compared channels are averaged per
// pixel, which scales Mean and MeanSquared by NumChannels relative to a
// per-sample average.
func WithChannelAveraging() Option {
	return func(o *options) {
		o.averageChannels = true
	}
}

// Compute reduces h to error statistics for an image of the given size.
func Compute(h *Histogram, width, height int, opts ...Option) Metrics {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var sum, sum2 uint64
	for i, n := range h {
		if n == 0 {
			continue
		}
		x := uint64(i) * n
		sum += x
		sum2 += uint64(i) * x
	}

	total := float64(width) * float64(height)
	if o.averageChannels {
		total *= NumChannels
	}

	m := Metrics{MaxError: h.MaxError()}
	if total > 0 {
		m.Mean = float64(sum) / total
		m.MeanSquared = float64(sum2) / total
	}
	m.RMSE = math.Sqrt(m.MeanSquared)
	if m.RMSE == 0 {
		m.PSNR = PerfectPSNR
	} else {
		m.PSNR = 20 * math.Log10(PeakValue/m.RMSE)
	}
	return m
}

// Compare bins a against b and computes their metrics.
func Compare(a, b *codec.Image, opts ...Option) (Metrics, error) {
	h, err := NewHistogram(a, b)
	if err != nil {
		return Metrics{}, err
	}
	return Compute(h, a.Width, a.Height, opts...), nil
}
