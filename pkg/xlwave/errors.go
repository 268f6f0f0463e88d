package xlwave

import (
	"errors"
	"fmt"
)

// ErrInvalidInputKind indicates the input is not a spreadsheet file.
var ErrInvalidInputKind = errors.New("invalid input kind")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// FileLoadError reports a workbook that could not be opened.
type FileLoadError struct {
	Path string
	Err  error
}

func (e *FileLoadError) Error() string {
	return fmt.Sprintf("load workbook %q: %v", e.Path, e.Err)
}

func (e *FileLoadError) Unwrap() error {
	return e.Err
}

// ReadError represents an error while reading a worksheet.
type ReadError struct {
	SheetName string
	Component string // "sheet", "cells"
	Err       error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(sheetName, component string, err error) *ReadError {
	return &ReadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
