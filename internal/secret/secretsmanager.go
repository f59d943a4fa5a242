package secret

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// GetSecretValueAPI is the slice of the Secrets Manager client this package uses.
type GetSecretValueAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerStore reads secrets from AWS Secrets Manager.
type SecretsManagerStore struct {
	api GetSecretValueAPI
}

// NewSecretsManagerStore wraps a Secrets Manager client.
func NewSecretsManagerStore(api GetSecretValueAPI) *SecretsManagerStore {
	return &SecretsManagerStore{api: api}
}

// NewSecretsManagerStoreFromConfig builds a store from an AWS config.
func NewSecretsManagerStoreFromConfig(cfg aws.Config) *SecretsManagerStore {
	return NewSecretsManagerStore(secretsmanager.NewFromConfig(cfg))
}

// GetSecret implements Store.
func (s *SecretsManagerStore) GetSecret(ctx context.Context, id string) (Payload, error) {
	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		var nf *types.ResourceNotFoundException
		if errors.As(err, &nf) {
			return Payload{}, &NotFoundError{ID: id}
		}
		return Payload{}, fmt.Errorf("get secret value: %w", err)
	}
	return Payload{String: out.SecretString, Binary: out.SecretBinary}, nil
}
