package validator

import "errors"

// FailureCode classifies why Validate did not succeed.
type FailureCode int

const (
	// NoSignature means the data carries no key locator name at all.
	NoSignature FailureCode = iota + 1
	// PolicyError means check(data.name, keylocator.name) was false, or
	// failed with an error, which is passed along with the code.
	PolicyError
	// InvalidSignature means a signature did not verify against the key
	// it was checked against.
	InvalidSignature
	// MalformedCert means a fetched certificate could not be interpreted.
	MalformedCert
	// CannotRetrieveCert means the fetcher failed, or the chain-depth
	// guard tripped before a certificate could be retrieved.
	CannotRetrieveCert
)

func (c FailureCode) String() string {
	switch c {
	case NoSignature:
		return "NO_SIGNATURE"
	case PolicyError:
		return "POLICY_ERROR"
	case InvalidSignature:
		return "INVALID_SIGNATURE"
	case MalformedCert:
		return "MALFORMED_CERT"
	case CannotRetrieveCert:
		return "CANNOT_RETRIEVE_CERT"
	default:
		return "UNKNOWN"
	}
}

// ErrChainTooDeep is wrapped into a CannotRetrieveCert failure when the
// certificate chain exceeds the configured depth guard.
var ErrChainTooDeep = errors.New("validator: certificate chain exceeds depth guard")
