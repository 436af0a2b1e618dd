package fidelity

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/cocosip/go-jpeg-fidelity/codec"
)

// MinBufferSize is the smallest buffer handed to an encoder on the buffer
// target.
const MinBufferSize = 1024

// BufferSize returns the capacity used for the buffer target,
// max(MinBufferSize, width*height*3).
func BufferSize(width, height int) int {
	if n := width * height * 3; n > MinBufferSize {
		return n
	}
	return MinBufferSize
}

// Invoker runs one compression through the configured target.
type Invoker struct {
	enc    codec.Encoder
	target Target
}

// NewInvoker creates an Invoker.
func NewInvoker(enc codec.Encoder, target Target) *Invoker {
	return &Invoker{enc: enc, target: target}
}

// Target returns the configured target.
func (inv *Invoker) Target() Target {
	return inv.target
}

// Compress encodes img with params and leaves the result at dst. Failures are
// reported as a *StageError of kind ErrEncodeFailure.
func (inv *Invoker) Compress(dst string, img *codec.Image, params codec.Params) error {
	var err error
	switch inv.target {
	case TargetFile:
		err = inv.enc.EncodeFile(dst, img, params)
	case TargetBuffer:
		err = inv.compressBuffer(dst, img, params)
	default:
		err = fmt.Errorf("%s: %w", inv.target, ErrInvalidArguments)
	}
	if err != nil {
		return stageError(ErrEncodeFailure, StageEncode, dst, err)
	}
	return nil
}

func (inv *Invoker) compressBuffer(dst string, img *codec.Image, params codec.Params) error {
	buf := make([]byte, BufferSize(img.Width, img.Height))
	n, err := inv.enc.EncodeBuffer(buf, img, params)
	if err != nil {
		return err
	}
	if n <= 0 || n > len(buf) {
		return fmt.Errorf("encoder reported %d bytes for a %d byte buffer: %w", n, len(buf), codec.ErrBufferTooSmall)
	}
	return persist(dst, buf[:n])
}

// persist writes data to path with an explicit open, write and close, each
// checked. The file is removed if any step fails.
func persist(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	written, err := f.Write(data)
	if err == nil && written != len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return multierror.Append(err, f.Close()).ErrorOrNil()
	}
	return f.Close()
}
