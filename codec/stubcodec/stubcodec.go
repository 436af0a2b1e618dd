// Package stubcodec provides a lossless stand-in for a JPEG backend with
// injectable distortion, so pipeline behavior can be tested without a real
// DCT codec.
package stubcodec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/flate"

	"github.com/cocosip/go-jpeg-fidelity/codec"
)

var magic = [4]byte{'S', 'T', 'U', 'B'}

const headerSize = 4 + 3*4

// ErrBadStream is returned when decoding something that was not written by
// the stub codec.
var ErrBadStream = errors.New("stubcodec: bad stream")

// Distortion rewrites a decoded image before it is returned.
type Distortion func(*codec.Image) *codec.Image

// Codec stores deflated samples behind a small header.
type Codec struct {
	name       string
	distortion Distortion
	swap       bool
}

// Option is a Codec option.
type Option func(*Codec)

// WithName overrides the registry name ("stub").
func WithName(name string) Option {
	return func(c *Codec) {
		c.name = name
	}
}

// WithDistortion returns an Option that applies fn to every decoded image.
func WithDistortion(fn Distortion) Option {
	return func(c *Codec) {
		c.distortion = fn
	}
}

// WithOffset returns an Option that adds d to every decoded sample.
func WithOffset(d int) Option {
	return WithDistortion(func(img *codec.Image) *codec.Image {
		return codec.Offset(img, d)
	})
}

// WithSwappedGeometry returns an Option that makes Decode report width and
// height swapped.
func WithSwappedGeometry() Option {
	return func(c *Codec) {
		c.swap = true
	}
}

// New returns a stub Codec.
func New(opts ...Option) *Codec {
	c := &Codec{name: "stub"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements codec.Codec.
func (c *Codec) Name() string {
	return c.name
}

func (c *Codec) encode(img *codec.Image, params codec.Params) ([]byte, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(magic[:])
	for _, v := range []int{img.Width, img.Height, img.Components} {
		_ = binary.Write(&buf, binary.BigEndian, uint32(v))
	}
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(img.PixelData[:img.Len()]); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeFile implements codec.Encoder.
func (c *Codec) EncodeFile(path string, img *codec.Image, params codec.Params) error {
	data, err := c.encode(img, params)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// EncodeBuffer implements codec.Encoder.
func (c *Codec) EncodeBuffer(buf []byte, img *codec.Image, params codec.Params) (int, error) {
	data, err := c.encode(img, params)
	if err != nil {
		return 0, err
	}
	if len(data) > len(buf) {
		return 0, codec.ErrBufferTooSmall
	}
	return copy(buf, data), nil
}

// Decode implements codec.Decoder.
func (c *Codec) Decode(path string, components int) (*codec.DecodeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize || !bytes.Equal(data[:4], magic[:]) {
		return nil, ErrBadStream
	}
	width := int(binary.BigEndian.Uint32(data[4:]))
	height := int(binary.BigEndian.Uint32(data[8:]))
	native := int(binary.BigEndian.Uint32(data[12:]))
	fr := flate.NewReader(bytes.NewReader(data[headerSize:]))
	pixels, err := io.ReadAll(fr)
	_ = fr.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	stored := &codec.Image{
		PixelData:  pixels,
		Width:      width,
		Height:     height,
		Components: native,
	}
	if err := stored.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStream, err)
	}

	img, err := convert(stored, components)
	if err != nil {
		return nil, err
	}
	if c.distortion != nil {
		img = c.distortion(img)
	}
	if c.swap {
		img.Width, img.Height = img.Height, img.Width
	}
	return &codec.DecodeResult{Image: *img, NativeComponents: native}, nil
}

func convert(img *codec.Image, components int) (*codec.Image, error) {
	if img.Components == components {
		out := codec.NewImage(img.Width, img.Height, components)
		copy(out.PixelData, img.PixelData)
		return out, nil
	}
	std, err := img.ToImage(codec.SubsamplingH2V2)
	if err != nil {
		return nil, err
	}
	return codec.FromImage(std, components)
}
