package issuerid

import (
	"fmt"

	"github.com/axent-pl/issuerid/common"
	"github.com/axent-pl/issuerid/common/logx"
	"github.com/axent-pl/issuerid/did"
	"github.com/axent-pl/issuerid/dnsdid"
	"github.com/axent-pl/issuerid/dnstxt"
)

// Resolver maps issuer identity fragments to identifiers using one
// extractor per proof kind. Fragments of any other kind resolve to
// common.UnknownIdentifier.
type Resolver struct {
	Extractors map[common.ProofKind]common.IdentifierExtractor
}

func NewResolver(extractors ...common.IdentifierExtractor) *Resolver {
	r := &Resolver{Extractors: make(map[common.ProofKind]common.IdentifierExtractor, len(extractors))}
	for _, e := range extractors {
		r.Extractors[e.Kind()] = e
	}
	return r
}

var defaultResolver = DefaultResolver()

// DefaultResolver returns a resolver for the DNS-TXT, DNS-DID and DID
// identity proofs.
func DefaultResolver() *Resolver {
	return NewResolver(
		&dnstxt.DnsTxtExtractor{},
		&dnsdid.DnsDidExtractor{},
		&did.DidExtractor{},
	)
}

// GetIdentityProofFragment returns the first fragment that is a valid
// issuer identity check.
func GetIdentityProofFragment(fragments []common.Fragment) (common.OptionalFragment, error) {
	if len(fragments) < 1 {
		logx.L().Debug("no verification fragments")
		return common.None(), fmt.Errorf("%w: please provide at least one verification fragment", common.ErrInvalidArgument)
	}
	for _, f := range fragments {
		if f.IsValidIssuerIdentity() {
			return common.Some(f), nil
		}
	}
	return common.None(), nil
}

func (r *Resolver) GetIdentifier(fragment common.OptionalFragment) (common.Result, error) {
	f, ok := fragment.Get()
	if !ok {
		logx.L().Debug("no valid issuer identity fragment")
		return common.Result{}, fmt.Errorf("%w: did not find any issuer identity fragment that is valid", common.ErrNotFound)
	}
	if common.IsEmptyPayload(f.Data) {
		logx.L().Debug("issuer identity fragment without data", "name", f.Name)
		return common.Result{}, fmt.Errorf("%w: no data property found in fragment", common.ErrMalformedInput)
	}

	extractor, ok := r.Extractors[f.Name]
	if !ok {
		logx.L().Debug("unrecognized identity proof", "name", f.Name)
		return common.SingleResult(common.UnknownIdentifier), nil
	}
	return extractor.Extract(f)
}

// Resolve selects the valid issuer identity fragment and extracts its
// identifier(s).
func (r *Resolver) Resolve(fragments []common.Fragment) (common.Result, error) {
	fragment, err := GetIdentityProofFragment(fragments)
	if err != nil {
		return common.Result{}, err
	}
	return r.GetIdentifier(fragment)
}

func GetIdentifier(fragment common.OptionalFragment) (common.Result, error) {
	return defaultResolver.GetIdentifier(fragment)
}

func Resolve(fragments []common.Fragment) (common.Result, error) {
	return defaultResolver.Resolve(fragments)
}
