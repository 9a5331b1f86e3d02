package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-formula/internal/helpers"
)

// FromString serves formula source held in memory. Inline formulas are
// the common case for this engine, so this is the default loader used
// by the package-level constructors.
type FromString struct {
	content   string
	sourceURL *url.URL
}

func NewFromString(content string) (*FromString, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrFormulaNotAvailable)
	}

	// A unique identifier keeps log lines from different inline
	// formulas distinguishable.
	u, err := url.Parse("string://inline/" + helpers.SourceID(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the formula.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
