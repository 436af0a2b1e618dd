package codec

import (
	"image/png"
	"os"
)

// SolidImage returns an image whose every pixel holds value. value must have
// one entry per component.
func SolidImage(width, height int, value ...byte) *Image {
	img := NewImage(width, height, len(value))
	for i := 0; i < len(img.PixelData); i += len(value) {
		copy(img.PixelData[i:], value)
	}
	return img
}

// GradientImage returns a smooth color gradient pattern.
func GradientImage(width, height, components int) *Image {
	img := NewImage(width, height, components)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offset := (y*width + x) * components
			if components == 1 {
				img.PixelData[offset] = byte((x + y) % 256)
				continue
			}
			img.PixelData[offset+0] = byte(x * 4)       // R
			img.PixelData[offset+1] = byte(y * 4)       // G
			img.PixelData[offset+2] = byte((x + y) * 2) // B
		}
	}
	return img
}

// Offset returns a copy of img with d added to every sample, saturating at 0
// and 255.
func Offset(img *Image, d int) *Image {
	out := &Image{
		PixelData:  make([]byte, len(img.PixelData)),
		Width:      img.Width,
		Height:     img.Height,
		Components: img.Components,
	}
	for i, v := range img.PixelData {
		out.PixelData[i] = byte(clamp(int(v)+d, 0, 255))
	}
	return out
}

// WritePNG stores img as a PNG file, which is handy for producing pipeline
// inputs in tests.
func WritePNG(path string, img *Image) error {
	sub := SubsamplingH2V2
	if img.Components == 1 {
		sub = SubsamplingLumaOnly
	}
	std, err := img.ToImage(sub)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	if err := png.Encode(f, std); err != nil {
		return err
	}
	return f.Close()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
