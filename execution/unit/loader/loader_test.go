package loader

import (
	"io"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// Standard formula strings used across loader tests
const (
	SimpleFormula    = "#1 + #2"
	WeightedFormula  = "#1 + #2 + #8 * 0.25"
	MultilineFormula = "COALESCE(\n  #4,\n  #2 + #3\n)"
)

// verifyLoader performs common verification steps for all loader implementations
func verifyLoader(t *testing.T, loader Loader, expectedURLString string) {
	t.Helper()

	require.NotNil(t, loader)

	sourceURL := loader.GetSourceURL()
	require.NotNil(t, sourceURL)

	if expectedURLString != "" {
		parsedURL, err := url.Parse(expectedURLString)
		require.NoError(t, err)
		require.Equal(t, parsedURL.Scheme, sourceURL.Scheme)
	}

	reader, err := loader.GetReader()
	if err == nil {
		require.NotNil(t, reader)
		t.Cleanup(func() {
			require.NoError(t, reader.Close(), "Failed to close reader")
		})
	}
}

// verifyMultipleReads tests that a loader can provide multiple readers
// with the same content
func verifyMultipleReads(t *testing.T, loader Loader, expectedContent string) {
	t.Helper()

	reader1, err := loader.GetReader()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, reader1.Close(), "Failed to close first reader")
	})

	content1, err := io.ReadAll(reader1)
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content1))

	reader2, err := loader.GetReader()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, reader2.Close(), "Failed to close second reader")
	})

	content2, err := io.ReadAll(reader2)
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content2))
}
