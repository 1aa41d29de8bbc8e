package dnstxt

// Identity is one DNS-TXT issuer record as reported by the DNS-TXT
// identity proof verifier.
//
// List payloads name the issuer domain in Location while a single payload
// carries it in Identifier.
type Identity struct {
	Type       string `json:"type,omitempty" mapstructure:"type"`
	Location   string `json:"location,omitempty" mapstructure:"location"`
	Identifier string `json:"identifier,omitempty" mapstructure:"identifier"`
	Value      string `json:"value,omitempty" mapstructure:"value"`
	Status     string `json:"status,omitempty" mapstructure:"status"`
}
