package common

import "encoding/json"

type IdentifierType string

const (
	IdentifierDNS     IdentifierType = "DNS"
	IdentifierDNSDID  IdentifierType = "DNS-DID"
	IdentifierDID     IdentifierType = "DID"
	IdentifierUnknown IdentifierType = "Unknown"
)

// Identifier is the normalized issuer identity.
type Identifier struct {
	Identifier string         `json:"identifier" yaml:"identifier"`
	Type       IdentifierType `json:"type" yaml:"type"`
}

var UnknownIdentifier = Identifier{Identifier: "Unknown", Type: IdentifierUnknown}

// Result holds either a single Identifier or an ordered list of them,
// mirroring the cardinality of the fragment payload.
type Result struct {
	identifiers []Identifier
	list        bool
}

func SingleResult(id Identifier) Result {
	return Result{identifiers: []Identifier{id}}
}

func ListResult(ids []Identifier) Result {
	if ids == nil {
		ids = []Identifier{}
	}
	return Result{identifiers: ids, list: true}
}

func (r Result) IsList() bool { return r.list }

// Single returns the identifier of a single valued result.
func (r Result) Single() (Identifier, bool) {
	if r.list || len(r.identifiers) != 1 {
		return Identifier{}, false
	}
	return r.identifiers[0], true
}

// List returns the identifiers of a list valued result.
func (r Result) List() ([]Identifier, bool) {
	if !r.list {
		return nil, false
	}
	return r.identifiers, true
}

// Identifiers returns the identifiers regardless of cardinality.
func (r Result) Identifiers() []Identifier {
	out := make([]Identifier, len(r.identifiers))
	copy(out, r.identifiers)
	return out
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value())
}

func (r Result) MarshalYAML() (any, error) {
	return r.value(), nil
}

func (r Result) value() any {
	if r.list {
		return r.identifiers
	}
	if id, ok := r.Single(); ok {
		return id
	}
	return nil
}
