package unit

import "io"

// Compiler defines the interface for validating formulas before
// evaluation. It checks syntax, may consult a cache of previously
// parsed source, and returns the valid formula as ExecutableContent.
//
// Example usage:
//
//	var comp Compiler = arith.NewCompiler(handler)
//	content, err := comp.Compile(reader)
//	if err != nil {
//	    // handle the construction error
//	}
type Compiler interface {
	// Compile checks if a formula is valid and returns it as executable
	// content. The reader is consumed and closed. Construction failures
	// (lex or parse errors) are returned wrapped; no content object
	// exists for invalid input.
	Compile(reader io.ReadCloser) (ExecutableContent, error)
}
