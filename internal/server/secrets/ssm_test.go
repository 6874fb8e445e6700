package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/storserv/storserv/internal/common"
)

type fakeSSMClient struct {
	value string
	err   error
	calls int
}

func (f *fakeSSMClient) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &ssm.GetParameterOutput{
		Parameter: &types.Parameter{Value: aws.String(f.value)},
	}, nil
}

func TestSSMProvider_FetchesAndCaches(t *testing.T) {
	t.Parallel()

	client := &fakeSSMClient{value: "s3cr3t"}
	p := NewSSMProvider(client, "storserv-jwt")
	ctx := context.Background()

	got, err := p.Secret(ctx)
	if err != nil {
		t.Fatalf("Secret error: %v", err)
	}
	if string(got) != "s3cr3t" {
		t.Fatalf("secret mismatch: got %q", got)
	}

	// A second call must be served from the cache.
	if _, err := p.Secret(ctx); err != nil {
		t.Fatalf("Secret error on cached call: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", client.calls)
	}
}

func TestSSMProvider_FetchError(t *testing.T) {
	t.Parallel()

	client := &fakeSSMClient{err: errors.New("throttled")}
	p := NewSSMProvider(client, "storserv-jwt")

	_, err := p.Secret(context.Background())
	if !errors.Is(err, common.ErrorSecretUnavailable) {
		t.Fatalf("expected ErrorSecretUnavailable, got %v", err)
	}
}

func TestSSMProvider_EmptyValueNotCached(t *testing.T) {
	t.Parallel()

	client := &fakeSSMClient{value: ""}
	p := NewSSMProvider(client, "storserv-jwt")
	ctx := context.Background()

	if _, err := p.Secret(ctx); !errors.Is(err, common.ErrorSecretUnavailable) {
		t.Fatalf("expected ErrorSecretUnavailable for empty value, got %v", err)
	}

	// Once the parameter is populated, the next fetch must succeed.
	client.value = "later"
	got, err := p.Secret(ctx)
	if err != nil {
		t.Fatalf("Secret error after value appeared: %v", err)
	}
	if string(got) != "later" {
		t.Fatalf("secret mismatch: got %q", got)
	}
	if client.calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", client.calls)
	}
}

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	p := NewStaticProvider("abc")
	got, err := p.Secret(context.Background())
	if err != nil {
		t.Fatalf("Secret error: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("secret mismatch: got %q", got)
	}

	empty := NewStaticProvider("")
	if _, err := empty.Secret(context.Background()); !errors.Is(err, common.ErrorSecretUnavailable) {
		t.Fatalf("expected ErrorSecretUnavailable for empty static secret, got %v", err)
	}
}
