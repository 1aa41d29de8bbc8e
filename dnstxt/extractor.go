package dnstxt

import (
	"github.com/axent-pl/issuerid/common"
	"github.com/axent-pl/issuerid/common/logx"
)

// list entries name the issuer in "location", a single payload in
// "identifier"; nothing else is decoded.
type locationEntry struct {
	Location string `mapstructure:"location"`
}

type identifierEntry struct {
	Identifier string `mapstructure:"identifier"`
}

type DnsTxtExtractor struct{}

var _ common.IdentifierExtractor = &DnsTxtExtractor{}

func (e *DnsTxtExtractor) Kind() common.ProofKind { return common.DnsTxtIdentityProof }

func (e *DnsTxtExtractor) Extract(fragment common.Fragment) (common.Result, error) {
	if records, list, ok := common.TypedPayload[Identity](fragment.Data); ok {
		if !list {
			return single(records[0].Identifier), nil
		}
		locations := make([]string, 0, len(records))
		for _, issuer := range records {
			locations = append(locations, issuer.Location)
		}
		return many(locations), nil
	}

	if !common.IsListPayload(fragment.Data) {
		records, _, err := common.DecodePayload[identifierEntry](fragment.Data)
		if err != nil {
			logx.L().Debug("could not decode DNS-TXT payload", "error", err)
			return common.Result{}, err
		}
		return single(records[0].Identifier), nil
	}

	records, _, err := common.DecodePayload[locationEntry](fragment.Data)
	if err != nil {
		logx.L().Debug("could not decode DNS-TXT payload", "error", err)
		return common.Result{}, err
	}
	locations := make([]string, 0, len(records))
	for _, issuer := range records {
		locations = append(locations, issuer.Location)
	}
	return many(locations), nil
}

func single(identifier string) common.Result {
	return common.SingleResult(common.Identifier{Identifier: identifier, Type: common.IdentifierDNS})
}

func many(identifiers []string) common.Result {
	out := make([]common.Identifier, 0, len(identifiers))
	for _, id := range identifiers {
		out = append(out, common.Identifier{Identifier: id, Type: common.IdentifierDNS})
	}
	return common.ListResult(out)
}
