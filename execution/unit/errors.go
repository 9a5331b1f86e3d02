package unit

import "errors"

var (
	ErrNoCompiler = errors.New("compiler is nil or invalid")
	ErrNoLoader   = errors.New("loader is nil or invalid")
)
