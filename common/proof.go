package common

// ProofKind identifies the identity proof method that produced a fragment.
type ProofKind string

const (
	DnsTxtIdentityProof ProofKind = "OpenAttestationDnsTxtIdentityProof"
	DnsDidIdentityProof ProofKind = "OpenAttestationDnsDidIdentityProof"
	DidIdentityProof    ProofKind = "OpenAttestationDidIdentityProof"
)

type IdentifierExtractor interface {
	Kind() ProofKind
	Extract(fragment Fragment) (Result, error)
}
