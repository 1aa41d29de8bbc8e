package common

type FragmentType string

const (
	DocumentIntegrity FragmentType = "DOCUMENT_INTEGRITY"
	DocumentStatus    FragmentType = "DOCUMENT_STATUS"
	IssuerIdentity    FragmentType = "ISSUER_IDENTITY"
)

type Status string

const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
	StatusSkipped Status = "SKIPPED"
	StatusError   Status = "ERROR"
)

// Reason explains why a verifier did not report VALID.
type Reason struct {
	Code       int    `json:"code" yaml:"code" mapstructure:"code"`
	CodeString string `json:"codeString" yaml:"codeString" mapstructure:"codeString"`
	Message    string `json:"message" yaml:"message" mapstructure:"message"`
}

// Fragment is a single verification result produced upstream.
//
// Data is the verifier specific payload. It is either one record or an
// ordered list of records, the shape depends on Name. Nil means the
// verifier attached no data.
type Fragment struct {
	Type   FragmentType `json:"type" yaml:"type" mapstructure:"type"`
	Name   ProofKind    `json:"name" yaml:"name" mapstructure:"name"`
	Status Status       `json:"status" yaml:"status" mapstructure:"status"`
	Data   any          `json:"data,omitempty" yaml:"data,omitempty" mapstructure:"data"`
	Reason *Reason      `json:"reason,omitempty" yaml:"reason,omitempty" mapstructure:"reason"`
}

func (f Fragment) IsValidIssuerIdentity() bool {
	return f.Type == IssuerIdentity && f.Status == StatusValid
}

// OptionalFragment carries a Fragment that may be absent.
type OptionalFragment struct {
	fragment Fragment
	ok       bool
}

func Some(f Fragment) OptionalFragment { return OptionalFragment{fragment: f, ok: true} }
func None() OptionalFragment           { return OptionalFragment{} }

func (o OptionalFragment) Get() (Fragment, bool) { return o.fragment, o.ok }
func (o OptionalFragment) IsPresent() bool       { return o.ok }
