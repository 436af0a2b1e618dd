package codec

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Luma weights in 16.16 fixed point (ITU-R BT.601).
const (
	lumaR = 19595
	lumaG = 38470
	lumaB = 7471
)

func luma(r, g, b byte) byte {
	return byte((lumaR*int(r) + lumaG*int(g) + lumaB*int(b) + 32768) >> 16)
}

// NativeComponents reports how many components the decoded image carries
// before any conversion: 1 for grayscale, 4 for images with an alpha channel
// and 3 otherwise.
func NativeComponents(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		return 3
	}
}

// FromImage converts img into an interleaved buffer with the requested number
// of components. Alpha is dropped; a single requested component yields luma.
func FromImage(img image.Image, components int) (*Image, error) {
	if components != 1 && components != 3 {
		return nil, fmt.Errorf("%d: %w", components, ErrInvalidComponents)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", b.Dx(), b.Dy(), ErrInvalidDimensions)
	}

	if g, ok := img.(*image.Gray); ok && components == 1 {
		out := NewImage(b.Dx(), b.Dy(), 1)
		for y := 0; y < out.Height; y++ {
			copy(out.PixelData[y*out.Width:(y+1)*out.Width], g.Pix[y*g.Stride:])
		}
		return out, nil
	}

	nrgba := imaging.Clone(img)
	out := NewImage(b.Dx(), b.Dy(), components)
	for y := 0; y < out.Height; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := out.PixelData[y*out.Stride():]
		for x := 0; x < out.Width; x++ {
			r, g, bl := src[x*4], src[x*4+1], src[x*4+2]
			if components == 1 {
				dst[x] = luma(r, g, bl)
				continue
			}
			dst[x*3] = r
			dst[x*3+1] = g
			dst[x*3+2] = bl
		}
	}
	return out, nil
}

// ToImage converts the buffer into an image.Image suitable for a JPEG
// encoder. SubsamplingLumaOnly yields an *image.Gray (one-component JPEG);
// SubsamplingH2V2 yields an opaque *image.RGBA.
func (img *Image) ToImage(sub Subsampling) (image.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if img.Components != 1 && img.Components != 3 {
		return nil, fmt.Errorf("%d: %w", img.Components, ErrInvalidComponents)
	}
	rect := image.Rect(0, 0, img.Width, img.Height)

	if sub == SubsamplingLumaOnly {
		gray := image.NewGray(rect)
		for y := 0; y < img.Height; y++ {
			src := img.PixelData[y*img.Stride():]
			dst := gray.Pix[y*gray.Stride:]
			for x := 0; x < img.Width; x++ {
				if img.Components == 1 {
					dst[x] = src[x]
				} else {
					dst[x] = luma(src[x*3], src[x*3+1], src[x*3+2])
				}
			}
		}
		return gray, nil
	}

	rgba := image.NewRGBA(rect)
	for y := 0; y < img.Height; y++ {
		src := img.PixelData[y*img.Stride():]
		dst := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < img.Width; x++ {
			if img.Components == 1 {
				v := src[x]
				dst[x*4], dst[x*4+1], dst[x*4+2] = v, v, v
			} else {
				dst[x*4] = src[x*3]
				dst[x*4+1] = src[x*3+1]
				dst[x*4+2] = src[x*3+2]
			}
			dst[x*4+3] = 0xff
		}
	}
	return rgba, nil
}
