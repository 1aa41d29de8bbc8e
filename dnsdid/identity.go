package dnsdid

// DnsVerificationFragment is the payload record of the DNS-DID identity
// proof verifier: the domain whose DNS-TXT record binds the issuer key.
type DnsVerificationFragment struct {
	Location string `json:"location,omitempty" mapstructure:"location"`
	Key      string `json:"key,omitempty" mapstructure:"key"`
	Status   string `json:"status,omitempty" mapstructure:"status"`
}
