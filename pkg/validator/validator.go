// Package validator is the boundary façade: given a data packet's name,
// key locator and signature, it decides whether that signature is both
// cryptographically valid and permitted by a trust schema, walking the
// certificate chain up to a trust anchor as needed.
package validator

import (
	"bytes"
	"context"

	"github.com/ndnlvs/lvs/pkg/certstore"
	"github.com/ndnlvs/lvs/pkg/match"
	"github.com/ndnlvs/lvs/pkg/model"
	"github.com/ndnlvs/lvs/pkg/sigverify"
	"github.com/ndnlvs/lvs/pkg/userfn"
	"github.com/pion/logging"
)

// DefaultChainDepth bounds certificate-chain recursion when Config does
// not set one explicitly.
const DefaultChainDepth = 32

// SignatureVerifier checks a signature over signed data under a public
// key. ECDSAP256Verifier in pkg/sigverify is the default implementation.
type SignatureVerifier interface {
	Verify(signedPortion, signature []byte, pub sigverify.PublicKey) bool
}

// Data is the minimal shape Validate needs from a signed packet.
type Data struct {
	Name           model.Name
	KeyLocatorName model.Name // nil means the packet carries no signature
	SignedPortion  []byte
	Signature      []byte
}

// Config wires a Validator's collaborators.
type Config struct {
	// Model is the decoded trust schema that governs which names may
	// sign which other names.
	Model *model.LvsModel
	// Fns supplies the user-function implementations the schema's
	// constraints may call.
	Fns map[string]userfn.Fn

	// Verifier checks raw signatures. Required.
	Verifier SignatureVerifier
	// Fetcher retrieves certificates named by a key locator that isn't
	// the trust anchor. Required.
	Fetcher certstore.Fetcher
	// Anchor is the trust anchor certificate: its name terminates the
	// chain walk without a fetch.
	Anchor *certstore.Certificate

	// ChainDepth bounds certificate-chain recursion. Defaults to
	// DefaultChainDepth when zero.
	ChainDepth int

	// LoggerFactory builds the Validator's logger. If nil, logging is
	// disabled.
	LoggerFactory logging.LoggerFactory
}

// Validator is the boundary façade described in package doc.
type Validator struct {
	checker    *match.Checker
	verifier   SignatureVerifier
	fetcher    certstore.Fetcher
	anchor     *certstore.Certificate
	chainDepth int
	log        logging.LeveledLogger
}

// pendingValidation is one unit of work on the trampoline's queue: either
// the original data packet (depth 0) or a certificate fetched while
// walking its signer chain (depth > 0).
type pendingValidation struct {
	data      Data
	depth     int
	onSuccess func()
	onFailure func(FailureCode, error)
}

// New builds a Validator from cfg.
func New(cfg Config) *Validator {
	depth := cfg.ChainDepth
	if depth == 0 {
		depth = DefaultChainDepth
	}
	var matchOpts []match.Option
	if cfg.LoggerFactory != nil {
		matchOpts = append(matchOpts, match.WithLoggerFactory(cfg.LoggerFactory))
	}
	v := &Validator{
		checker:    match.New(cfg.Model, cfg.Fns, matchOpts...),
		verifier:   cfg.Verifier,
		fetcher:    cfg.Fetcher,
		anchor:     cfg.Anchor,
		chainDepth: depth,
	}
	if cfg.LoggerFactory != nil {
		v.log = cfg.LoggerFactory.NewLogger("validator")
	}
	return v
}

// Validate decides whether data's signature is both valid and permitted
// by the schema, calling onSuccess or onFailure exactly once. The walk up
// the certificate chain runs on an explicit work-list rather than Go-level
// recursion, so ChainDepth bounds real memory, not stack depth.
func (v *Validator) Validate(ctx context.Context, data Data, onSuccess func(), onFailure func(FailureCode, error)) {
	queue := []pendingValidation{{data: data, depth: 0, onSuccess: onSuccess, onFailure: onFailure}}
	v.run(ctx, queue)
}

func (v *Validator) run(ctx context.Context, queue []pendingValidation) {
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		queue = v.step(ctx, item, queue)
	}
}

func (v *Validator) step(ctx context.Context, item pendingValidation, queue []pendingValidation) []pendingValidation {
	data := item.data

	if data.KeyLocatorName == nil {
		v.fail(item, NoSignature, nil)
		return queue
	}

	ok, err := v.checker.Check(data.Name, data.KeyLocatorName)
	if err != nil {
		v.fail(item, PolicyError, err)
		return queue
	}
	if !ok {
		v.fail(item, PolicyError, nil)
		return queue
	}

	if v.anchor != nil && nameEqual(data.KeyLocatorName, v.anchor.Name) {
		if v.verifier.Verify(data.SignedPortion, data.Signature, v.anchor.PublicKey) {
			item.onSuccess()
		} else {
			v.fail(item, InvalidSignature, nil)
		}
		return queue
	}

	if item.depth >= v.chainDepth {
		v.fail(item, CannotRetrieveCert, ErrChainTooDeep)
		return queue
	}

	cert, err := v.fetcher.Fetch(ctx, data.KeyLocatorName)
	if err != nil {
		v.fail(item, CannotRetrieveCert, err)
		return queue
	}
	if !certWellFormed(cert) {
		v.fail(item, MalformedCert, certstore.ErrMalformedCertificate)
		return queue
	}

	certData := Data{
		Name:           cert.Name,
		KeyLocatorName: cert.KeyLocatorName,
		SignedPortion:  cert.SignedPortion,
		Signature:      cert.Signature,
	}
	onSuccess := item.onSuccess
	onFailure := item.onFailure
	queue = append(queue, pendingValidation{
		data:  certData,
		depth: item.depth + 1,
		onSuccess: func() {
			if v.verifier.Verify(data.SignedPortion, data.Signature, cert.PublicKey) {
				onSuccess()
			} else {
				v.fail(item, InvalidSignature, nil)
			}
		},
		onFailure: func(code FailureCode, err error) {
			// A broken link anywhere up the chain means this
			// certificate cannot vouch for anything; it never
			// surfaces as the leaf packet's own NO_SIGNATURE or
			// POLICY_ERROR.
			if code == CannotRetrieveCert {
				v.fail(item, CannotRetrieveCert, err)
				return
			}
			v.fail(item, MalformedCert, err)
		},
	})
	return queue
}

func (v *Validator) fail(item pendingValidation, code FailureCode, err error) {
	if v.log != nil {
		if err != nil {
			v.log.Infof("validation failed: %s: %v", code, err)
		} else {
			v.log.Infof("validation failed: %s", code)
		}
	}
	item.onFailure(code, err)
}

func certWellFormed(cert *certstore.Certificate) bool {
	return cert != nil && !cert.PublicKey.IsZero() && len(cert.SignedPortion) > 0 && len(cert.Signature) > 0
}

func nameEqual(a, b model.Name) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
