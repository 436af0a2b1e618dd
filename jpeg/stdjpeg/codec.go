// Package stdjpeg implements codec.Codec on top of the standard library's
// baseline JPEG encoder and decoder.
package stdjpeg

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/cocosip/go-jpeg-fidelity/codec"
	"github.com/cocosip/go-jpeg-fidelity/jpeg/common"
)

// Name is the registry name of this codec.
const Name = "std"

// Codec implements the codec.Codec interface for image/jpeg
type Codec struct{}

// NewCodec creates a new image/jpeg codec
func NewCodec() *Codec {
	return &Codec{}
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return Name
}

func encoder(params codec.Params) common.EncodeFunc {
	opts := &jpeg.Options{Quality: params.Quality}
	return func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, opts)
	}
}

// EncodeFile encodes img as a baseline JPEG file at path. Luma-only params
// produce a single-component JPEG; otherwise chroma is subsampled 4:2:0.
func (c *Codec) EncodeFile(path string, img *codec.Image, params codec.Params) error {
	std, err := common.Prepare(img, params)
	if err != nil {
		return err
	}
	if err := common.WriteFile(path, std, encoder(params)); err != nil {
		return fmt.Errorf("jpeg encode %s: %w", path, err)
	}
	return nil
}

// EncodeBuffer encodes img into buf.
func (c *Codec) EncodeBuffer(buf []byte, img *codec.Image, params codec.Params) (int, error) {
	std, err := common.Prepare(img, params)
	if err != nil {
		return 0, err
	}
	n, err := common.WriteBuffer(buf, std, encoder(params))
	if err != nil {
		return 0, fmt.Errorf("jpeg encode to %d byte buffer: %w", len(buf), err)
	}
	return n, nil
}

// Decode decodes the JPEG file at path.
func (c *Codec) Decode(path string, components int) (*codec.DecodeResult, error) {
	res, err := common.ReadFile(path, components, jpeg.Decode)
	if err != nil {
		return nil, fmt.Errorf("jpeg decode %s: %w", path, err)
	}
	return res, nil
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
