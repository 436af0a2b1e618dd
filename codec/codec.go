package codec

//go:generate mockgen -source=codec.go -destination=./mock_codec/codec.go

// Encoder compresses interleaved pixel data into an encoded image.
//
// Both methods must produce identical bytes for identical inputs; the two
// variants only differ in where the output goes.
type Encoder interface {
	// EncodeFile encodes img and writes a complete file at path.
	EncodeFile(path string, img *Image, params Params) error

	// EncodeBuffer encodes img into buf and returns the number of bytes
	// written. ErrBufferTooSmall is returned if buf cannot hold the output.
	EncodeBuffer(buf []byte, img *Image, params Params) (int, error)
}

// Decoder decodes an image file into interleaved pixel data.
type Decoder interface {
	// Decode reads the image at path and converts it to the requested
	// number of interleaved components (1 or 3).
	Decode(path string, components int) (*DecodeResult, error)
}

// Codec is a JPEG backend that can both encode and decode.
type Codec interface {
	Encoder
	Decoder

	// Name returns a human-readable name
	Name() string
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	Image

	// NativeComponents is the component count stored in the file, before
	// conversion to the requested count.
	NativeComponents int
}
