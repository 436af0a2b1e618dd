package codec

import "fmt"

// Image is an interleaved 8-bit pixel buffer.
//
// Samples are stored row by row with a stride of Width*Components and no
// padding, so len(PixelData) == Width*Height*Components.
type Image struct {
	PixelData  []byte // Interleaved samples (R,G,B,R,G,B,... for 3 components)
	Width      int    // Image width
	Height     int    // Image height
	Components int    // Number of color components (1=grayscale, 3=RGB)
}

// NewImage allocates a zeroed Image.
func NewImage(width, height, components int) *Image {
	return &Image{
		PixelData:  make([]byte, width*height*components),
		Width:      width,
		Height:     height,
		Components: components,
	}
}

// Stride returns the number of bytes per row.
func (img *Image) Stride() int {
	return img.Width * img.Components
}

// Len returns the number of samples the buffer must hold.
func (img *Image) Len() int {
	return img.Width * img.Height * img.Components
}

// Validate checks the buffer invariants.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("nil image: %w", ErrInvalidDimensions)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", img.Width, img.Height, ErrInvalidDimensions)
	}
	if img.Components < 1 || img.Components > 4 {
		return fmt.Errorf("%d: %w", img.Components, ErrInvalidComponents)
	}
	if len(img.PixelData) < img.Len() {
		return fmt.Errorf("have %d samples, need %d: %w", len(img.PixelData), img.Len(), ErrBufferTooSmall)
	}
	return nil
}

// At returns the sample of component c at (x, y).
func (img *Image) At(x, y, c int) byte {
	return img.PixelData[y*img.Stride()+x*img.Components+c]
}
