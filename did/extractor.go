package did

import (
	"github.com/axent-pl/issuerid/common"
	"github.com/axent-pl/issuerid/common/logx"
)

type didEntry struct {
	Did string `mapstructure:"did"`
}

type DidExtractor struct{}

var _ common.IdentifierExtractor = &DidExtractor{}

func (e *DidExtractor) Kind() common.ProofKind { return common.DidIdentityProof }

func (e *DidExtractor) Extract(fragment common.Fragment) (common.Result, error) {
	var dids []string
	var list bool
	if records, isList, ok := common.TypedPayload[SignatureVerificationFragment](fragment.Data); ok {
		for _, issuer := range records {
			dids = append(dids, issuer.Did)
		}
		list = isList
	} else {
		records, isList, err := common.DecodePayload[didEntry](fragment.Data)
		if err != nil {
			logx.L().Debug("could not decode DID payload", "error", err)
			return common.Result{}, err
		}
		for _, issuer := range records {
			dids = append(dids, issuer.Did)
		}
		list = isList
	}

	identifiers := make([]common.Identifier, 0, len(dids))
	for _, did := range dids {
		identifiers = append(identifiers, common.Identifier{
			Identifier: did,
			Type:       common.IdentifierDID,
		})
	}
	if !list {
		return common.SingleResult(identifiers[0]), nil
	}
	return common.ListResult(identifiers), nil
}
