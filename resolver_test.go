package issuerid_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/axent-pl/issuerid"
	"github.com/axent-pl/issuerid/common"
)

var (
	integrityValid = common.Fragment{
		Type:   common.DocumentIntegrity,
		Name:   "OpenAttestationHash",
		Status: common.StatusValid,
		Data:   true,
	}
	dnsTxtValid = common.Fragment{
		Type:   common.IssuerIdentity,
		Name:   common.DnsTxtIdentityProof,
		Status: common.StatusValid,
		Data:   map[string]any{"identifier": "example.com"},
	}
	didSkipped = common.Fragment{
		Type:   common.IssuerIdentity,
		Name:   common.DidIdentityProof,
		Status: common.StatusSkipped,
		Reason: &common.Reason{Code: 0, CodeString: "SKIPPED", Message: "Document was not signed by DID directly"},
	}
)

func TestGetIdentityProofFragment(t *testing.T) {
	second := dnsTxtValid
	second.Data = map[string]any{"identifier": "second.com"}

	tests := []struct {
		name      string
		fragments []common.Fragment
		want      common.OptionalFragment
		wantErr   error
	}{
		{
			name:      "empty input",
			fragments: []common.Fragment{},
			want:      common.None(),
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "nil input",
			fragments: nil,
			want:      common.None(),
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "no issuer identity",
			fragments: []common.Fragment{integrityValid},
			want:      common.None(),
		},
		{
			name:      "issuer identity not valid",
			fragments: []common.Fragment{integrityValid, didSkipped},
			want:      common.None(),
		},
		{
			name:      "valid issuer identity",
			fragments: []common.Fragment{integrityValid, didSkipped, dnsTxtValid},
			want:      common.Some(dnsTxtValid),
		},
		{
			name:      "first match wins",
			fragments: []common.Fragment{dnsTxtValid, second},
			want:      common.Some(dnsTxtValid),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := issuerid.GetIdentityProofFragment(tt.fragments)
			if tt.wantErr != nil {
				if !errors.Is(gotErr, tt.wantErr) {
					t.Errorf("GetIdentityProofFragment() error = %v, want %v", gotErr, tt.wantErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("GetIdentityProofFragment() failed: %v", gotErr)
			}
			wantFragment, wantOK := tt.want.Get()
			gotFragment, gotOK := got.Get()
			if gotOK != wantOK {
				t.Fatalf("GetIdentityProofFragment() present = %v, want %v", gotOK, wantOK)
			}
			if diff := cmp.Diff(wantFragment, gotFragment); diff != "" {
				t.Errorf("GetIdentityProofFragment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		fragment common.OptionalFragment
		want     []common.Identifier
		wantList bool
		wantErr  error
	}{
		{
			name:     "absent fragment",
			fragment: common.None(),
			wantErr:  common.ErrNotFound,
		},
		{
			name: "fragment without data",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   common.DnsTxtIdentityProof,
				Status: common.StatusValid,
			}),
			wantErr: common.ErrMalformedInput,
		},
		{
			name: "unknown kind without data is still malformed",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   "SomethingElse",
				Status: common.StatusValid,
			}),
			wantErr: common.ErrMalformedInput,
		},
		{
			name: "unknown kind with false data",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   "SomethingElse",
				Status: common.StatusValid,
				Data:   false,
			}),
			wantErr: common.ErrMalformedInput,
		},
		{
			name: "unknown kind with empty string data",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   "SomethingElse",
				Status: common.StatusValid,
				Data:   "",
			}),
			wantErr: common.ErrMalformedInput,
		},
		{
			name: "did with zero data",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   common.DidIdentityProof,
				Status: common.StatusValid,
				Data:   0,
			}),
			wantErr: common.ErrMalformedInput,
		},
		{
			name:     "dns-txt single",
			fragment: common.Some(dnsTxtValid),
			want:     []common.Identifier{{Identifier: "example.com", Type: common.IdentifierDNS}},
		},
		{
			name: "dns-did list",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   common.DnsDidIdentityProof,
				Status: common.StatusValid,
				Data:   []any{map[string]any{"location": "a.com"}, map[string]any{"location": "b.com"}},
			}),
			want: []common.Identifier{
				{Identifier: "a.com", Type: common.IdentifierDNSDID},
				{Identifier: "b.com", Type: common.IdentifierDNSDID},
			},
			wantList: true,
		},
		{
			name: "did single",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   common.DidIdentityProof,
				Status: common.StatusValid,
				Data:   map[string]any{"did": "did:example:123"},
			}),
			want: []common.Identifier{{Identifier: "did:example:123", Type: common.IdentifierDID}},
		},
		{
			name: "unknown kind with single payload",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   "SomethingElse",
				Status: common.StatusValid,
				Data:   map[string]any{"location": "a.com"},
			}),
			want: []common.Identifier{common.UnknownIdentifier},
		},
		{
			name: "unknown kind with list payload",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   "SomethingElse",
				Status: common.StatusValid,
				Data:   []any{map[string]any{"location": "a.com"}, map[string]any{"location": "b.com"}},
			}),
			want: []common.Identifier{common.UnknownIdentifier},
		},
		{
			name: "malformed list entry",
			fragment: common.Some(common.Fragment{
				Type:   common.IssuerIdentity,
				Name:   common.DidIdentityProof,
				Status: common.StatusValid,
				Data:   []any{1, 2},
			}),
			wantErr: common.ErrMalformedInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := issuerid.GetIdentifier(tt.fragment)
			if tt.wantErr != nil {
				if !errors.Is(gotErr, tt.wantErr) {
					t.Errorf("GetIdentifier() error = %v, want %v", gotErr, tt.wantErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("GetIdentifier() failed: %v", gotErr)
			}
			if got.IsList() != tt.wantList {
				t.Errorf("GetIdentifier() IsList() = %v, want %v", got.IsList(), tt.wantList)
			}
			if diff := cmp.Diff(tt.want, got.Identifiers()); diff != "" {
				t.Errorf("GetIdentifier() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	got, err := issuerid.Resolve([]common.Fragment{integrityValid, dnsTxtValid})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	id, ok := got.Single()
	if !ok {
		t.Fatalf("Resolve() returned list %v, want single", got.Identifiers())
	}
	if id != (common.Identifier{Identifier: "example.com", Type: common.IdentifierDNS}) {
		t.Errorf("Resolve() = %v", id)
	}

	if _, err := issuerid.Resolve(nil); !errors.Is(err, common.ErrInvalidArgument) {
		t.Errorf("Resolve(nil) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := issuerid.Resolve([]common.Fragment{integrityValid, didSkipped}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

type staticExtractor struct{}

func (staticExtractor) Kind() common.ProofKind { return "CustomProof" }

func (staticExtractor) Extract(common.Fragment) (common.Result, error) {
	return common.SingleResult(common.Identifier{Identifier: "custom", Type: "Custom"}), nil
}

func TestResolver_CustomExtractors(t *testing.T) {
	r := issuerid.NewResolver(staticExtractor{})
	custom := common.Fragment{
		Type:   common.IssuerIdentity,
		Name:   "CustomProof",
		Status: common.StatusValid,
		Data:   map[string]any{},
	}

	got, err := r.Resolve([]common.Fragment{custom})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if id, _ := got.Single(); id.Identifier != "custom" {
		t.Errorf("Resolve() = %v, want custom", id)
	}

	// kinds not registered on this resolver fall back to Unknown
	got, err = r.Resolve([]common.Fragment{dnsTxtValid})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if id, _ := got.Single(); id != common.UnknownIdentifier {
		t.Errorf("Resolve() = %v, want %v", id, common.UnknownIdentifier)
	}
}

func TestResolve_Concurrent(t *testing.T) {
	fragments := []common.Fragment{integrityValid, dnsTxtValid}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := issuerid.Resolve(fragments); err != nil {
				t.Errorf("Resolve() failed: %v", err)
			}
		}()
	}
	wg.Wait()
}
