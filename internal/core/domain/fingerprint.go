package domain

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is part of the on-disk entry format, not used for security
	"encoding/hex"
)

// FingerprintLen is the length of a hex-encoded SHA-1 digest.
const FingerprintLen = 2 * sha1.Size

// Fingerprint is the lowercase hex SHA-1 digest of some content.
type Fingerprint string

// NewFingerprint computes the fingerprint of data.
func NewFingerprint(data []byte) Fingerprint {
	sum := sha1.Sum(data) //nolint:gosec // see import
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// FingerprintFromSum hex-encodes an already computed SHA-1 sum.
func FingerprintFromSum(sum []byte) Fingerprint {
	return Fingerprint(hex.EncodeToString(sum))
}

// String returns the hex digest.
func (f Fingerprint) String() string {
	return string(f)
}
