package dnsdid

import (
	"github.com/axent-pl/issuerid/common"
	"github.com/axent-pl/issuerid/common/logx"
)

// locationEntry is the only part of a DnsVerificationFragment the extractor
// reads.
type locationEntry struct {
	Location string `mapstructure:"location"`
}

type DnsDidExtractor struct{}

var _ common.IdentifierExtractor = &DnsDidExtractor{}

func (e *DnsDidExtractor) Kind() common.ProofKind { return common.DnsDidIdentityProof }

func (e *DnsDidExtractor) Extract(fragment common.Fragment) (common.Result, error) {
	var locations []string
	var list bool
	if records, isList, ok := common.TypedPayload[DnsVerificationFragment](fragment.Data); ok {
		for _, issuer := range records {
			locations = append(locations, issuer.Location)
		}
		list = isList
	} else {
		records, isList, err := common.DecodePayload[locationEntry](fragment.Data)
		if err != nil {
			logx.L().Debug("could not decode DNS-DID payload", "error", err)
			return common.Result{}, err
		}
		for _, issuer := range records {
			locations = append(locations, issuer.Location)
		}
		list = isList
	}

	identifiers := make([]common.Identifier, 0, len(locations))
	for _, location := range locations {
		identifiers = append(identifiers, common.Identifier{
			Identifier: location,
			Type:       common.IdentifierDNSDID,
		})
	}
	if !list {
		return common.SingleResult(identifiers[0]), nil
	}
	return common.ListResult(identifiers), nil
}
