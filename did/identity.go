package did

// SignatureVerificationFragment is the payload record of the DID identity
// proof verifier.
type SignatureVerificationFragment struct {
	Did      string `json:"did,omitempty" mapstructure:"did"`
	Verified bool   `json:"verified,omitempty" mapstructure:"verified"`
	Location string `json:"location,omitempty" mapstructure:"location"`
}
