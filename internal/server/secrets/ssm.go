package secrets

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/storserv/storserv/internal/common"
)

// ssmClient is the subset of the SSM API the provider needs.
type ssmClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSMProvider fetches the signing secret from an SSM parameter (with
// decryption) and caches the first non-empty value for the lifetime of the
// process. Racing fetches may each hit SSM; all of them observe the same
// externally-stored value, so the cache is written without locking and the
// first writer wins. An empty parameter value is never cached.
type SSMProvider struct {
	client    ssmClient
	paramName string
	cached    atomic.Pointer[[]byte]
}

func NewSSMProvider(client ssmClient, paramName string) *SSMProvider {
	return &SSMProvider{client: client, paramName: paramName}
}

// NewSSMProviderFromEnv builds an SSMProvider with a client configured from
// the default AWS credential chain.
func NewSSMProviderFromEnv(ctx context.Context, region string, paramName string) (*SSMProvider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return NewSSMProvider(ssm.NewFromConfig(cfg), paramName), nil
}

func (p *SSMProvider) Secret(ctx context.Context) ([]byte, error) {
	if v := p.cached.Load(); v != nil {
		return *v, nil
	}

	out, err := p.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(p.paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorSecretUnavailable, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil || *out.Parameter.Value == "" {
		return nil, common.ErrorSecretUnavailable
	}

	secret := []byte(*out.Parameter.Value)
	p.cached.Store(&secret)
	return secret, nil
}
