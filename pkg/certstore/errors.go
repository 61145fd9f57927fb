package certstore

import "errors"

// ErrNotFound is returned when a certificate fetch has no result and no
// fetch is expected to ever complete it synchronously.
var ErrNotFound = errors.New("certstore: certificate not found")

// ErrMalformedCertificate is returned when a fetched certificate is nil or
// lacks a public key, a signed portion or a signature.
var ErrMalformedCertificate = errors.New("certstore: malformed certificate")
