package source

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/cocosip/go-dicom/pkg/dicom/parser"
	"github.com/cocosip/go-dicom/pkg/dicom/tag"

	"github.com/cocosip/go-jpeg-fidelity/codec"
)

// ErrCompressedPixelData is returned for DICOM files whose pixel data is
// encapsulated.
var ErrCompressedPixelData = errors.New("encapsulated pixel data is not supported")

// dicomFrame holds the attributes needed to turn native pixel data into an
// image.
type dicomFrame struct {
	rows, cols  int
	samples     int
	bitsStored  int
	planar      bool
	photometric string
	data        []byte
}

func decodeDICOM(path string, components int) (*codec.DecodeResult, error) {
	res, err := parser.ParseFile(path, parser.WithReadOption(parser.ReadAll))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if res.TransferSyntax != nil && res.TransferSyntax.IsEncapsulated() {
		return nil, fmt.Errorf("%s: %w", path, ErrCompressedPixelData)
	}

	ds := res.Dataset
	frame := dicomFrame{
		rows:       int(ds.TryGetUInt16(tag.Rows, 0)),
		cols:       int(ds.TryGetUInt16(tag.Columns, 0)),
		samples:    int(ds.TryGetUInt16(tag.SamplesPerPixel, 0)),
		bitsStored: int(ds.TryGetUInt16(tag.BitsStored, 0)),
		planar:     ds.TryGetUInt16(tag.PlanarConfiguration, 0) == 1,
	}
	if frame.samples == 0 {
		frame.samples = 1
	}
	if frame.bitsStored == 0 {
		frame.bitsStored = 8
	}
	if pi, ok := ds.GetString(tag.PhotometricInterpretation); ok {
		frame.photometric = strings.TrimSpace(pi)
	}

	pd, ok := ds.Get(tag.PixelData)
	if !ok {
		return nil, fmt.Errorf("%s: no pixel data: %w", path, codec.ErrUnsupportedFormat)
	}
	// Native pixel data parses as OB or OW depending on the VR it was
	// written with; both expose the raw little-endian bytes.
	raw, ok := pd.(interface{ GetData() []byte })
	if !ok {
		return nil, fmt.Errorf("%s: pixel data type %T: %w", path, pd, codec.ErrUnsupportedFormat)
	}
	frame.data = raw.GetData()

	img, err := frame.image()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out, err := codec.FromImage(img, components)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	return &codec.DecodeResult{Image: *out, NativeComponents: frame.samples}, nil
}

// image converts the first frame. Only 8-bit grayscale and RGB are handled.
func (f dicomFrame) image() (image.Image, error) {
	if f.rows <= 0 || f.cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", f.cols, f.rows, codec.ErrInvalidDimensions)
	}
	if f.bitsStored <= 0 || f.bitsStored > 8 {
		return nil, fmt.Errorf("%d bits stored: %w", f.bitsStored, codec.ErrUnsupportedFormat)
	}
	if f.samples != 1 && f.samples != 3 {
		return nil, fmt.Errorf("%d samples per pixel: %w", f.samples, codec.ErrInvalidComponents)
	}
	pixels := f.rows * f.cols
	if len(f.data) < pixels*f.samples {
		return nil, fmt.Errorf("pixel data has %d bytes, need %d: %w", len(f.data), pixels*f.samples, codec.ErrBufferTooSmall)
	}

	rect := image.Rect(0, 0, f.cols, f.rows)
	if f.samples == 1 {
		gray := image.NewGray(rect)
		copy(gray.Pix, f.data[:pixels])
		if f.photometric == "MONOCHROME1" {
			for i, v := range gray.Pix {
				gray.Pix[i] = 255 - v
			}
		}
		return gray, nil
	}

	rgba := image.NewRGBA(rect)
	for i := 0; i < pixels; i++ {
		var r, g, b byte
		if f.planar {
			r, g, b = f.data[i], f.data[pixels+i], f.data[2*pixels+i]
		} else {
			r, g, b = f.data[i*3], f.data[i*3+1], f.data[i*3+2]
		}
		rgba.Pix[i*4] = r
		rgba.Pix[i*4+1] = g
		rgba.Pix[i*4+2] = b
		rgba.Pix[i*4+3] = 0xff
	}
	return rgba, nil
}
