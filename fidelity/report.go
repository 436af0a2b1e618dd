package fidelity

import (
	"os"

	"github.com/cocosip/go-jpeg-fidelity/codec"
	"github.com/cocosip/go-jpeg-fidelity/metrics"
)

// Report is the outcome of a successful run.
type Report struct {
	Source           string          `json:"source"`
	Dest             string          `json:"dest"`
	Width            int             `json:"width"`
	Height           int             `json:"height"`
	NativeComponents int             `json:"native_components"`
	Quality          int             `json:"quality"`
	Subsampling      string          `json:"subsampling"`
	Target           Target          `json:"target"`
	Codec            string          `json:"codec"`
	CompressedSize   int64           `json:"compressed_size"`
	Metrics          metrics.Metrics `json:"metrics"`
}

func newReport(src, dst string, img *codec.Image, native int, params codec.Params) *Report {
	return &Report{
		Source:           src,
		Dest:             dst,
		Width:            img.Width,
		Height:           img.Height,
		NativeComponents: native,
		Quality:          params.Quality,
		Subsampling:      params.Subsampling.String(),
	}
}

// FileSize returns the size of the file at path, or 0 when it cannot be
// determined.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0
	}
	return info.Size()
}
