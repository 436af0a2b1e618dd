// Package source decodes the images a fidelity run starts from.
//
// Raster formats go through imaging, which applies EXIF orientation and
// understands PNG, JPEG, GIF, BMP and TIFF. WebP is registered through
// golang.org/x/image. Files with a .dcm extension are read as DICOM.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/cocosip/go-jpeg-fidelity/codec"
)

// Loader implements codec.Decoder for source images.
type Loader struct {
	autoOrient bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithAutoOrientation controls whether EXIF orientation is applied. It is on
// by default.
func WithAutoOrientation(enabled bool) Option {
	return func(l *Loader) {
		l.autoOrient = enabled
	}
}

// NewLoader creates a source loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{autoOrient: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ codec.Decoder = (*Loader)(nil)

// Decode reads the image at path and returns it with the requested number of
// components. NativeComponents reports the channel count stored in the file.
func (l *Loader) Decode(path string, components int) (*codec.DecodeResult, error) {
	if isDICOM(path) {
		return decodeDICOM(path, components)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(l.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	out, err := codec.FromImage(img, components)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	return &codec.DecodeResult{Image: *out, NativeComponents: codec.NativeComponents(img)}, nil
}

func isDICOM(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".dcm" || ext == ".dicom"
}
