package fidelity

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure of a run is a *StageError whose Kind is one of
// these.
var (
	ErrInvalidArguments    = errors.New("invalid arguments")
	ErrDecodeFailure       = errors.New("decode failure")
	ErrEncodeFailure       = errors.New("encode failure")
	ErrVerificationFailure = errors.New("verification failure")
)

// Stage names used in StageError.
const (
	StageArguments = "arguments"
	StageSource    = "load source"
	StageEncode    = "compress"
	StageDecode    = "decompress"
	StageVerify    = "verify"
	StageMetrics   = "metrics"
)

// StageError describes a failed pipeline stage.
type StageError struct {
	Kind  error
	Stage string
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	msg := e.Stage
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap lets errors.Is match both the kind and the cause.
func (e *StageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func stageError(kind error, stage, path string, err error) *StageError {
	return &StageError{Kind: kind, Stage: stage, Path: path, Err: err}
}
