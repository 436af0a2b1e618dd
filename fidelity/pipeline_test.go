package fidelity

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jcgregorio/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocosip/go-jpeg-fidelity/codec"
	"github.com/cocosip/go-jpeg-fidelity/codec/mock_codec"
	"github.com/cocosip/go-jpeg-fidelity/codec/stubcodec"
	"github.com/cocosip/go-jpeg-fidelity/metrics"
	"github.com/cocosip/go-jpeg-fidelity/source"
)

type bufferSyncWriter struct {
	bytes.Buffer
}

func (w *bufferSyncWriter) Sync() error {
	return nil
}

func writeSource(t *testing.T, img *codec.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.png")
	require.NoError(t, codec.WritePNG(path, img))
	return path
}

func TestRunIdentityCodec(t *testing.T) {
	src := writeSource(t, codec.GradientImage(24, 16, 3))

	for _, target := range []Target{TargetFile, TargetBuffer} {
		t.Run(target.String(), func(t *testing.T) {
			dst := filepath.Join(t.TempDir(), "out.stub")
			p := New(source.NewLoader(), stubcodec.New(), WithTarget(target))

			rep, err := p.Run(src, dst, 75)
			require.NoError(t, err)

			assert.Equal(t, 24, rep.Width)
			assert.Equal(t, 16, rep.Height)
			assert.Equal(t, 3, rep.NativeComponents)
			assert.Equal(t, "H2V2", rep.Subsampling)
			assert.Equal(t, target, rep.Target)
			assert.Equal(t, "stub", rep.Codec)
			assert.Positive(t, rep.CompressedSize)
			assert.Less(t, rep.CompressedSize, int64(BufferSize(24, 16)))
			assert.Equal(t, FileSize(dst), rep.CompressedSize)

			assert.Equal(t, 0, rep.Metrics.MaxError)
			assert.Zero(t, rep.Metrics.Mean)
			assert.Zero(t, rep.Metrics.RMSE)
			assert.Equal(t, metrics.PerfectPSNR, rep.Metrics.PSNR)
		})
	}
}

func TestRunBufferTargetImageSizes(t *testing.T) {
	sizes := []struct{ width, height int }{
		{2, 2}, {18, 18}, {19, 19}, {24, 16}, {64, 48},
	}

	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(t *testing.T) {
			src := writeSource(t, codec.GradientImage(sz.width, sz.height, 3))
			dir := t.TempDir()
			fileDst := filepath.Join(dir, "file.stub")
			bufDst := filepath.Join(dir, "buffer.stub")

			_, err := New(source.NewLoader(), stubcodec.New()).Run(src, fileDst, 80)
			require.NoError(t, err)
			rep, err := New(source.NewLoader(), stubcodec.New(), WithTarget(TargetBuffer)).Run(src, bufDst, 80)
			require.NoError(t, err)
			assert.Equal(t, 0, rep.Metrics.MaxError)

			a, err := os.ReadFile(fileDst)
			require.NoError(t, err)
			b, err := os.ReadFile(bufDst)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestRunConstantOffset(t *testing.T) {
	const d = 4
	src := writeSource(t, codec.SolidImage(8, 8, 100, 100, 100))

	tests := []struct {
		name string
		opts []Option
		want metrics.Metrics
	}{
		{
			name: "Per pixel",
			want: metrics.Metrics{
				MaxError:    d,
				Mean:        3 * d,
				MeanSquared: 3 * d * d,
				RMSE:        math.Sqrt(3) * d,
				PSNR:        20 * math.Log10(255/(math.Sqrt(3)*d)),
			},
		},
		{
			name: "Per sample",
			opts: []Option{WithChannelAveraging()},
			want: metrics.Metrics{
				MaxError:    d,
				Mean:        d,
				MeanSquared: d * d,
				RMSE:        d,
				PSNR:        20 * math.Log10(255.0/d),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := filepath.Join(t.TempDir(), "out.stub")
			p := New(source.NewLoader(), stubcodec.New(stubcodec.WithOffset(d)), tt.opts...)

			rep, err := p.Run(src, dst, 50)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, rep.Metrics, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("metrics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunInvalidQuality(t *testing.T) {
	src := writeSource(t, codec.GradientImage(4, 4, 3))

	for _, quality := range []int{-1, 0, 101} {
		dst := filepath.Join(t.TempDir(), "out.stub")
		_, err := New(source.NewLoader(), stubcodec.New()).Run(src, dst, quality)
		assert.ErrorIs(t, err, ErrInvalidArguments, "quality %d", quality)
		assert.ErrorIs(t, err, codec.ErrInvalidQuality, "quality %d", quality)
		assert.NoFileExists(t, dst)
	}
}

func TestRunMissingPaths(t *testing.T) {
	p := New(source.NewLoader(), stubcodec.New())

	_, err := p.Run("", "out.stub", 50)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	_, err = p.Run("in.png", "", 50)
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestRunSourceDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.stub")

	_, err := New(source.NewLoader(), stubcodec.New()).Run(filepath.Join(dir, "missing.png"), dst, 50)

	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageSource, se.Stage)
	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.NoFileExists(t, dst)
}

func TestRunGeometryMismatch(t *testing.T) {
	tests := []struct {
		name    string
		img     *codec.Image
		wantErr error
	}{
		{"Non-square", codec.GradientImage(8, 4, 3), ErrVerificationFailure},
		{"Square", codec.GradientImage(6, 6, 3), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeSource(t, tt.img)
			dst := filepath.Join(t.TempDir(), "out.stub")

			rep, err := New(source.NewLoader(), stubcodec.New(stubcodec.WithSwappedGeometry())).Run(src, dst, 50)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, 0, rep.Metrics.MaxError)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, metrics.ErrGeometryMismatch)
			assert.Nil(t, rep)
		})
	}
}

func TestRunLumaOnlySource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	img := codec.GradientImage(4, 4, 3)
	dec := mock_codec.NewMockDecoder(ctrl)
	dec.EXPECT().Decode("in.pgm", 3).Return(&codec.DecodeResult{Image: *img, NativeComponents: 1}, nil)

	c := mock_codec.NewMockCodec(ctrl)
	c.EXPECT().Name().Return("mock").AnyTimes()
	c.EXPECT().
		EncodeFile(gomock.Any(), gomock.Any(), codec.Params{Quality: 42, Subsampling: codec.SubsamplingLumaOnly}).
		Return(nil)
	c.EXPECT().Decode(gomock.Any(), 3).Return(&codec.DecodeResult{Image: *img, NativeComponents: 1}, nil)

	dst := filepath.Join(t.TempDir(), "out.jpg")
	rep, err := New(dec, c).Run("in.pgm", dst, 42)
	require.NoError(t, err)
	assert.Equal(t, "Y_ONLY", rep.Subsampling)
	assert.Equal(t, int64(0), rep.CompressedSize)
}

func TestRunEncodeFailure(t *testing.T) {
	errDisk := errors.New("disk full")

	tests := []struct {
		name   string
		target Target
		expect func(c *mock_codec.MockCodec)
	}{
		{
			name:   "File",
			target: TargetFile,
			expect: func(c *mock_codec.MockCodec) {
				c.EXPECT().EncodeFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(errDisk)
			},
		},
		{
			name:   "Buffer",
			target: TargetBuffer,
			expect: func(c *mock_codec.MockCodec) {
				c.EXPECT().EncodeBuffer(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errDisk)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			img := codec.GradientImage(4, 4, 3)
			dec := mock_codec.NewMockDecoder(ctrl)
			dec.EXPECT().Decode(gomock.Any(), 3).Return(&codec.DecodeResult{Image: *img, NativeComponents: 3}, nil)
			c := mock_codec.NewMockCodec(ctrl)
			c.EXPECT().Name().Return("mock").AnyTimes()
			tt.expect(c)

			dst := filepath.Join(t.TempDir(), "out.jpg")
			_, err := New(dec, c, WithTarget(tt.target)).Run("in.png", dst, 90)
			assert.ErrorIs(t, err, ErrEncodeFailure)
			assert.ErrorIs(t, err, errDisk)
			assert.NoFileExists(t, dst)
		})
	}
}

func TestRunDecoderReturnsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	img := codec.GradientImage(4, 4, 3)
	dec := mock_codec.NewMockDecoder(ctrl)
	dec.EXPECT().Decode(gomock.Any(), 3).Return(&codec.DecodeResult{Image: *img, NativeComponents: 3}, nil)
	c := mock_codec.NewMockCodec(ctrl)
	c.EXPECT().Name().Return("mock").AnyTimes()
	c.EXPECT().EncodeFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	c.EXPECT().Decode(gomock.Any(), 3).Return(nil, nil)

	_, err := New(dec, c).Run("in.png", filepath.Join(t.TempDir(), "out.jpg"), 90)
	assert.ErrorIs(t, err, ErrDecodeFailure)
}

func TestRunLogging(t *testing.T) {
	var logs bufferSyncWriter
	l := logger.NewFromOptions(&logger.Options{
		SyncWriter:   &logs,
		IncludeDebug: true,
	})
	src := writeSource(t, codec.GradientImage(5, 3, 3))
	dir := t.TempDir()
	p := New(source.NewLoader(), stubcodec.New(), WithLogger(l))

	_, err := p.Run(src, filepath.Join(dir, "out.stub"), 60)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Source image resolution: 5x3")
	assert.Contains(t, logs.String(), "Compressed file size:")
	assert.Contains(t, logs.String(), "through file target")

	logs.Reset()
	_, err = p.Run(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out2.stub"), 60)
	require.Error(t, err)
	assert.True(t, strings.Contains(logs.String(), "missing.png"), logs.String())
}

func TestRunOverwritesDestination(t *testing.T) {
	src := writeSource(t, codec.GradientImage(4, 4, 3))
	dst := filepath.Join(t.TempDir(), "out.stub")
	require.NoError(t, os.WriteFile(dst, bytes.Repeat([]byte{0xAA}, 4096), 0o644))

	rep, err := New(source.NewLoader(), stubcodec.New(), WithTarget(TargetBuffer)).Run(src, dst, 50)
	require.NoError(t, err)
	assert.Equal(t, FileSize(dst), rep.CompressedSize)
	assert.Less(t, rep.CompressedSize, int64(4096))
}

func TestRunProgress(t *testing.T) {
	src := writeSource(t, codec.GradientImage(6, 4, 3))
	dir := t.TempDir()

	var stages []string
	var sizes []int64
	p := New(source.NewLoader(), stubcodec.New(), WithProgress(func(stage string, rep *Report) {
		stages = append(stages, stage)
		sizes = append(sizes, rep.CompressedSize)
		assert.Equal(t, 6, rep.Width)
		assert.Equal(t, 4, rep.Height)
	}))

	rep, err := p.Run(src, filepath.Join(dir, "out.stub"), 70)
	require.NoError(t, err)
	assert.Equal(t, []string{StageSource, StageEncode, StageDecode}, stages)
	assert.Equal(t, []int64{0, 0, rep.CompressedSize}, sizes)

	stages = nil
	sizes = nil
	_, err = p.Run(src, filepath.Join(dir, "missing", "out.stub"), 70)
	assert.ErrorIs(t, err, ErrEncodeFailure)
	assert.Equal(t, []string{StageSource, StageEncode}, stages)
}
