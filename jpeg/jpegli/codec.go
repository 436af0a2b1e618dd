// Package jpegli implements codec.Codec with the jpegli encoder and decoder.
package jpegli

import (
	"fmt"
	"image"
	"io"

	"github.com/gen2brain/jpegli"

	"github.com/cocosip/go-jpeg-fidelity/codec"
	"github.com/cocosip/go-jpeg-fidelity/jpeg/common"
)

// Name is the registry name of this codec.
const Name = "jpegli"

// Codec implements the codec.Codec interface for jpegli
type Codec struct{}

// NewCodec creates a new jpegli codec
func NewCodec() *Codec {
	return &Codec{}
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return Name
}

func encoder(params codec.Params) common.EncodeFunc {
	opts := &jpegli.EncodingOptions{
		Quality:           params.Quality,
		ChromaSubsampling: image.YCbCrSubsampleRatio420,
	}
	return func(w io.Writer, img image.Image) error {
		return jpegli.Encode(w, img, opts)
	}
}

// EncodeFile encodes img as a JPEG file at path.
func (c *Codec) EncodeFile(path string, img *codec.Image, params codec.Params) error {
	std, err := common.Prepare(img, params)
	if err != nil {
		return err
	}
	if err := common.WriteFile(path, std, encoder(params)); err != nil {
		return fmt.Errorf("jpegli encode %s: %w", path, err)
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
		return 0, fmt.Errorf("jpegli encode to %d byte buffer: %w", len(buf), err)
	}
	return n, nil
}

// Decode decodes the JPEG file at path.
func (c *Codec) Decode(path string, components int) (*codec.DecodeResult, error) {
	res, err := common.ReadFile(path, components, jpegli.Decode)
	if err != nil {
		return nil, fmt.Errorf("jpegli decode %s: %w", path, err)
	}
	return res, nil
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
