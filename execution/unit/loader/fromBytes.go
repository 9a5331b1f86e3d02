package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-formula/internal/helpers"
)

// FromBytes implements the Loader interface for content from a byte slice.
type FromBytes struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromBytes creates a new Loader from a byte slice. Formula source is
// always text, so content that is empty or all whitespace is rejected.
func NewFromBytes(content []byte) (*FromBytes, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: content is empty", ErrFormulaNotAvailable)
	}

	if isOnlyWhitespace(content) {
		return nil, fmt.Errorf(
			"%w: content is empty or contains only whitespace",
			ErrFormulaNotAvailable,
		)
	}

	u, err := url.Parse("bytes://inline/" + helpers.SourceIDBytes(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromBytes{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromBytes) String() string {
	return fmt.Sprintf("loader.FromBytes{Bytes: %d}", len(l.content))
}

// GetReader returns a new reader for the stored content.
func (l *FromBytes) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the formula.
func (l *FromBytes) GetSourceURL() *url.URL {
	return l.sourceURL
}

// isOnlyWhitespace checks if a byte slice contains only whitespace characters
func isOnlyWhitespace(data []byte) bool {
	if len(data) == 0 {
		return true
	}

	for _, b := range data {
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' && b != '\f' && b != '\v' {
			return false
		}
	}
	return true
}
