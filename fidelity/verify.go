package fidelity

import (
	"fmt"

	"github.com/cocosip/go-jpeg-fidelity/codec"
	"github.com/cocosip/go-jpeg-fidelity/metrics"
)

// VerifyGeometry reports metrics.ErrGeometryMismatch when decoded does not have
// the dimensions of orig.
func VerifyGeometry(orig, decoded *codec.Image) error {
	if orig.Width != decoded.Width || orig.Height != decoded.Height {
		return fmt.Errorf("decoded %dx%d, source %dx%d: %w",
			decoded.Width, decoded.Height, orig.Width, orig.Height, metrics.ErrGeometryMismatch)
	}
	return nil
}

// DecodeAndVerify decodes path with metrics.NumChannels channels and checks
// the result against the geometry of orig.
func DecodeAndVerify(dec codec.Decoder, path string, orig *codec.Image) (*codec.Image, error) {
	res, err := dec.Decode(path, metrics.NumChannels)
	if err != nil {
		return nil, stageError(ErrDecodeFailure, StageDecode, path, err)
	}
	if res == nil {
		return nil, stageError(ErrDecodeFailure, StageDecode, path, codec.ErrUnsupportedFormat)
	}
	if err := res.Validate(); err != nil {
		return nil, stageError(ErrDecodeFailure, StageDecode, path, err)
	}
	if err := VerifyGeometry(orig, &res.Image); err != nil {
		return nil, stageError(ErrVerificationFailure, StageVerify, path, err)
	}
	return &res.Image, nil
}
