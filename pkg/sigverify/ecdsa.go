// Package sigverify checks signatures over signed data without ever
// touching a private key: the validator only needs to confirm that bytes
// were signed by the key a certificate claims, never to produce one.
package sigverify

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"fmt"
	"math/big"
)

const (
	// p256PublicKeySizeBytes is the uncompressed public key size:
	// 0x04 || X (32 bytes) || Y (32 bytes).
	p256PublicKeySizeBytes = 65

	// p256GroupSizeBytes is the size of one scalar component.
	p256GroupSizeBytes = 32

	// p256SignatureSizeBytes is the fixed r||s signature size.
	p256SignatureSizeBytes = 64
)

// PublicKey is a verifier-owned, already-parsed ECDSA P-256 public key.
type PublicKey struct {
	key *ecdsa.PublicKey
}

// ParseP256PublicKey parses a 65-byte uncompressed P-256 public key
// (0x04 || X || Y) and checks that the point lies on the curve.
func ParseP256PublicKey(raw []byte) (PublicKey, error) {
	if len(raw) != p256PublicKeySizeBytes || raw[0] != 0x04 {
		return PublicKey{}, fmt.Errorf("%w: want %d uncompressed bytes, got %d", ErrInvalidPublicKey, p256PublicKeySizeBytes, len(raw))
	}
	x := new(big.Int).SetBytes(raw[1:33])
	y := new(big.Int).SetBytes(raw[33:65])
	curve := elliptic.P256()
	if !curve.IsOnCurve(x, y) {
		return PublicKey{}, fmt.Errorf("%w: point not on P-256", ErrInvalidPublicKey)
	}
	return PublicKey{key: &ecdsa.PublicKey{Curve: curve, X: x, Y: y}}, nil
}

// IsZero reports whether pub is the zero value: never returned by
// ParseP256PublicKey, but a useful guard against an uninitialized
// Certificate.PublicKey field.
func (pub PublicKey) IsZero() bool {
	return pub.key == nil
}

// ECDSAP256Verifier verifies ECDSA-over-P256-SHA256 signatures, the
// signature scheme a certificate's SignatureInfo names.
type ECDSAP256Verifier struct{}

// Verify reports whether signature is a valid ECDSA/P-256/SHA-256
// signature over signedPortion under pub. It never returns an error: an
// unparseable signature is simply not valid.
func (ECDSAP256Verifier) Verify(signedPortion, signature []byte, pub PublicKey) bool {
	if pub.key == nil {
		return false
	}
	r, s, err := parseSignature(signature)
	if err != nil {
		return false
	}
	hash := sha256.Sum256(signedPortion)
	return ecdsa.Verify(pub.key, hash[:], r, s)
}

// parseSignature splits a fixed-size r||s signature into its two scalars,
// failing with ErrInvalidSignatureLength if signature is not exactly
// p256SignatureSizeBytes long.
func parseSignature(signature []byte) (r, s *big.Int, err error) {
	if len(signature) != p256SignatureSizeBytes {
		return nil, nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidSignatureLength, p256SignatureSizeBytes, len(signature))
	}
	r = new(big.Int).SetBytes(signature[:p256GroupSizeBytes])
	s = new(big.Int).SetBytes(signature[p256GroupSizeBytes:])
	return r, s, nil
}
