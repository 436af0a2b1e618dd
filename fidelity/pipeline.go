// Package fidelity round-trips an image through a JPEG codec and measures
// how much was lost.
package fidelity

import (
	"fmt"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"

	"github.com/cocosip/go-jpeg-fidelity/codec"
	"github.com/cocosip/go-jpeg-fidelity/metrics"
)

// Pipeline ties a source decoder and a JPEG codec together. A Pipeline holds
// no per-run state and runs are independent of each other.
type Pipeline struct {
	src        codec.Decoder
	codec      codec.Codec
	target     Target
	metricOpts []metrics.Option
	log        slog.Logger
	progress   ProgressFunc
}

// ProgressFunc is called as a run moves through its stages. rep holds what
// is known so far: geometry and parameters once the source is loaded, and
// CompressedSize once the output has been written.
type ProgressFunc func(stage string, rep *Report)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTarget selects the compression target. The default is TargetFile.
func WithTarget(t Target) Option {
	return func(p *Pipeline) {
		p.target = t
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithProgress registers fn to be called when the source has been loaded
// (StageSource), before compression (StageEncode) and after compression
// (StageDecode).
func WithProgress(fn ProgressFunc) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// WithChannelAveraging divides the error sums by the number of compared
// samples instead of the number of pixels.
func WithChannelAveraging() Option {
	return func(p *Pipeline) {
		p.metricOpts = append(p.metricOpts, metrics.WithChannelAveraging())
	}
}

// New creates a Pipeline reading sources with src and round-tripping them
// through c.
func New(src codec.Decoder, c codec.Codec, opts ...Option) *Pipeline {
	p := &Pipeline{
		src:    src,
		codec:  c,
		target: TargetFile,
		log:    logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run compresses srcPath at the given quality into dstPath, decodes the
// result and measures it against the source. Any failure aborts the run with
// a *StageError and no metrics.
func (p *Pipeline) Run(srcPath, dstPath string, quality int) (*Report, error) {
	rep, err := p.run(srcPath, dstPath, quality)
	if err != nil {
		p.log.Errorf("%s -> %s: %v", srcPath, dstPath, err)
		return nil, err
	}
	return rep, nil
}

func (p *Pipeline) run(srcPath, dstPath string, quality int) (*Report, error) {
	if err := p.validate(srcPath, dstPath, quality); err != nil {
		return nil, err
	}

	p.log.Debugf("Decoding source %s", srcPath)
	src, err := p.src.Decode(srcPath, metrics.NumChannels)
	if err != nil {
		return nil, stageError(ErrDecodeFailure, StageSource, srcPath, err)
	}
	if src == nil {
		return nil, stageError(ErrDecodeFailure, StageSource, srcPath, codec.ErrUnsupportedFormat)
	}
	if err := src.Validate(); err != nil {
		return nil, stageError(ErrDecodeFailure, StageSource, srcPath, err)
	}
	p.log.Infof("Source image resolution: %dx%d, %d native components", src.Width, src.Height, src.NativeComponents)

	params, err := codec.NewParams(quality, src.NativeComponents)
	if err != nil {
		return nil, stageError(ErrInvalidArguments, StageArguments, "", err)
	}
	rep := newReport(srcPath, dstPath, &src.Image, src.NativeComponents, params)
	rep.Target = p.target
	rep.Codec = p.codec.Name()
	p.report(StageSource, rep)

	inv := NewInvoker(p.codec, p.target)
	p.log.Debugf("Compressing to %s with %s quality %d %s through %s target",
		dstPath, p.codec.Name(), params.Quality, params.Subsampling, inv.Target())
	p.report(StageEncode, rep)
	if err := inv.Compress(dstPath, &src.Image, params); err != nil {
		return nil, err
	}
	rep.CompressedSize = FileSize(dstPath)
	p.log.Infof("Compressed file size: %d", rep.CompressedSize)
	p.report(StageDecode, rep)

	decoded, err := DecodeAndVerify(p.codec, dstPath, &src.Image)
	if err != nil {
		return nil, err
	}

	m, err := metrics.Compare(&src.Image, decoded, p.metricOpts...)
	if err != nil {
		return nil, stageError(ErrVerificationFailure, StageMetrics, dstPath, err)
	}
	p.log.Debugf("%s", m)

	rep.Metrics = m
	return rep, nil
}

func (p *Pipeline) report(stage string, rep *Report) {
	if p.progress != nil {
		p.progress(stage, rep)
	}
}

func (p *Pipeline) validate(srcPath, dstPath string, quality int) error {
	if p.src == nil || p.codec == nil {
		return stageError(ErrInvalidArguments, StageArguments, "", fmt.Errorf("pipeline needs a source decoder and a codec"))
	}
	if srcPath == "" || dstPath == "" {
		return stageError(ErrInvalidArguments, StageArguments, "", fmt.Errorf("source and destination paths are required"))
	}
	if err := codec.ValidateQuality(quality); err != nil {
		return stageError(ErrInvalidArguments, StageArguments, "", err)
	}
	return nil
}
