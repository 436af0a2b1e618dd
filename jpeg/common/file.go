package common

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/cocosip/go-jpeg-fidelity/codec"
)

// EncodeFunc writes img to w.
type EncodeFunc func(w io.Writer, img image.Image) error

// DecodeFunc reads an image from r.
type DecodeFunc func(r io.Reader) (image.Image, error)

// Prepare validates the inputs of an encode and converts the buffer into the
// image.Image layout matching params.Subsampling.
func Prepare(img *codec.Image, params codec.Params) (image.Image, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return img.ToImage(params.Subsampling)
}

// WriteFile creates path and streams enc's output into it. A partially
// written file is removed on failure.
func WriteFile(path string, img image.Image, enc EncodeFunc) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(f)
	if encErr := enc(bw, img); encErr != nil {
		return multierror.Append(encErr, f.Close()).ErrorOrNil()
	}
	if flushErr := bw.Flush(); flushErr != nil {
		return multierror.Append(flushErr, f.Close()).ErrorOrNil()
	}
	return f.Close()
}

// WriteBuffer encodes img into buf and returns the number of bytes written.
func WriteBuffer(buf []byte, img image.Image, enc EncodeFunc) (int, error) {
	w := NewFixedWriter(buf)
	if err := enc(w, img); err != nil {
		return 0, err
	}
	return w.Len(), nil
}

// ReadFile decodes the image at path with dec and converts it to the
// requested number of components.
func ReadFile(path string, components int, dec DecodeFunc) (*codec.DecodeResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := dec(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%s: decoder returned no image: %w", path, codec.ErrUnsupportedFormat)
	}

	out, err := codec.FromImage(img, components)
	if err != nil {
		return nil, err
	}
	return &codec.DecodeResult{Image: *out, NativeComponents: codec.NativeComponents(img)}, nil
}
