package errors

import (
	"errors"
	"fmt"
)

// Pipeline stages, used to tag failures so callers can report "extraction
// failed" distinctly from "load failed".
const (
	StageExtract   = "extract"
	StageTransform = "transform"
	StageLoad      = "load"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// UnsupportedFileKindError is returned by the extractor when the uploaded
// file is neither CSV nor a spreadsheet.
type UnsupportedFileKindError struct {
	Extension string
}

func (e *UnsupportedFileKindError) Error() string {
	return fmt.Sprintf("unsupported file type: %q", e.Extension)
}

func IsUnsupportedFileKind(err error) bool {
	var unsupported *UnsupportedFileKindError
	return errors.As(err, &unsupported)
}

// MalformedInputError is returned by the extractor when the stream cannot be
// parsed into tabular rows or a required column is missing.
type MalformedInputError struct {
	Msg string
	Err error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("malformed input: %s", e.Msg)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func NewMalformedInputError(msg string, err error) error {
	return &MalformedInputError{Msg: msg, Err: err}
}

func IsMalformedInput(err error) bool {
	var malformed *MalformedInputError
	return errors.As(err, &malformed)
}

// LoadError wraps the persistence failure that aborted an import batch.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load failed: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func NewLoadError(err error) error {
	return &LoadError{Err: err}
}

func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}

// PipelineError tags a stage failure with the stage that produced it.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline %s stage: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewPipelineError(stage string, err error) error {
	return &PipelineError{Stage: stage, Err: err}
}

// StageOf reports the failed stage of a pipeline error, or "" when err is not
// a PipelineError.
func StageOf(err error) string {
	var pipeErr *PipelineError
	if errors.As(err, &pipeErr) {
		return pipeErr.Stage
	}
	return ""
}
