package codec

import "fmt"

// Subsampling selects how chroma is stored in the encoded image.
type Subsampling int

const (
	// SubsamplingH2V2 stores Y at full resolution and Cb/Cr at half
	// resolution in both directions (4:2:0).
	SubsamplingH2V2 Subsampling = iota

	// SubsamplingLumaOnly stores only the Y channel (grayscale JPEG).
	SubsamplingLumaOnly
)

func (s Subsampling) String() string {
	switch s {
	case SubsamplingH2V2:
		return "H2V2"
	case SubsamplingLumaOnly:
		return "Y_ONLY"
	default:
		return fmt.Sprintf("Subsampling(%d)", int(s))
	}
}

// MinQuality and MaxQuality bound the JPEG quality factor.
const (
	MinQuality = 1
	MaxQuality = 100
)

// Params is the compression configuration for a single encode.
type Params struct {
	// Quality controls the JPEG compression quality (1-100)
	// - 100: Best quality, minimal compression
	// - 75:  Medium quality, good balance
	// - 1:   Lowest quality, maximum compression
	Quality int

	// Subsampling is the chroma layout of the encoded image.
	Subsampling Subsampling
}

// ValidateQuality reports ErrInvalidQuality for factors outside 1-100.
func ValidateQuality(quality int) error {
	if quality < MinQuality || quality > MaxQuality {
		return fmt.Errorf("%d: %w", quality, ErrInvalidQuality)
	}
	return nil
}

// NewParams selects the configuration for a source image. Grayscale sources
// (one native component) are encoded luma-only, everything else with 4:2:0
// chroma subsampling.
func NewParams(quality, nativeComponents int) (Params, error) {
	if err := ValidateQuality(quality); err != nil {
		return Params{}, err
	}
	p := Params{Quality: quality, Subsampling: SubsamplingH2V2}
	if nativeComponents == 1 {
		p.Subsampling = SubsamplingLumaOnly
	}
	return p, nil
}

// Validate checks if the parameters are valid
func (p Params) Validate() error {
	if err := ValidateQuality(p.Quality); err != nil {
		return err
	}
	switch p.Subsampling {
	case SubsamplingH2V2, SubsamplingLumaOnly:
		return nil
	default:
		return fmt.Errorf("subsampling %v: %w", p.Subsampling, ErrUnsupportedFormat)
	}
}
