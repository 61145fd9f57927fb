// Package certstore holds the minimal certificate shape the validator
// façade needs to verify a signer's chain, and an in-memory store of them
// keyed by name. It is not a PKI layer: it decodes nothing, issues
// nothing, and knows no certificate format beyond these five fields.
package certstore

import (
	"context"
	"fmt"

	"github.com/ndnlvs/lvs/pkg/model"
	"github.com/ndnlvs/lvs/pkg/ndnname"
	"github.com/ndnlvs/lvs/pkg/sigverify"
)

// Certificate binds a name to a public key, together with the bytes a
// verifier needs to recheck that binding: the data it was signed over,
// and the signature itself. KeyLocatorName is the name of the
// certificate that in turn vouches for this one.
type Certificate struct {
	Name           model.Name
	KeyLocatorName model.Name
	PublicKey      sigverify.PublicKey
	SignedPortion  []byte
	Signature      []byte
}

// Fetcher retrieves a certificate by name. A real implementation might
// express an NDN Interest and wait for Data; Store answers from memory.
type Fetcher interface {
	Fetch(ctx context.Context, name model.Name) (*Certificate, error)
}

// Store is an in-memory Fetcher, keyed by a name's URI form. It exists
// for tests and for a CLI's offline mode, where every certificate in the
// chain is already on disk.
type Store struct {
	certs map[string]*Certificate
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{certs: make(map[string]*Certificate)}
}

// Put indexes cert under its own name, overwriting any certificate
// previously stored under that name.
func (s *Store) Put(cert *Certificate) {
	s.certs[ndnname.NameString(cert.Name)] = cert
}

// Fetch returns the certificate stored under name, or ErrNotFound.
func (s *Store) Fetch(ctx context.Context, name model.Name) (*Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cert, ok := s.certs[ndnname.NameString(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ndnname.NameString(name))
	}
	return cert, nil
}
