package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// sourceIDLength is the number of hex characters kept when a digest
// identifies formula source in loader URLs and String() output. Long
// enough to tell formulas apart in logs, short enough to keep URLs
// readable.
const sourceIDLength = 8

// SHA256 returns the hex-encoded digest of a string. Executable units
// and loaders use truncated digests as content-derived identifiers.
func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

func SHA256Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}

func SHA256Reader(reader io.Reader) (string, error) {
	hash := sha256.New()
	_, err := io.Copy(hash, reader)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// SourceID returns the short content identifier loaders embed in their
// source URLs for formula text.
func SourceID(source string) string {
	return SHA256(source)[:sourceIDLength]
}

// SourceIDBytes is SourceID for raw content.
func SourceIDBytes(content []byte) string {
	return SHA256Bytes(content)[:sourceIDLength]
}
