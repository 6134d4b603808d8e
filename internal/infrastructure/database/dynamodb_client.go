package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Config holds the connection settings for the DynamoDB instance backing the
// interventions and counters tables. Endpoint is only set for local DynamoDB.
type Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConfigFromEnv reads the connection settings, defaulting to a local-friendly
// setup (local DynamoDB accepts any credentials but the SDK requires some).
//
// Env vars: AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
// DYNAMODB_ENDPOINT (optional, e.g. http://dynamodb:8000).
func ConfigFromEnv() Config {
	return Config{
		Region:          getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
	}
}

// Connect builds the DynamoDB client for this configuration.
func (c Config) Connect(ctx context.Context) (*dynamodb.Client, error) {
	creds := credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(creds),
	}

	if c.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: c.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// MustConnect is the startup path: the engine cannot serve without its store.
func MustConnect(ctx context.Context) *dynamodb.Client {
	client, err := ConfigFromEnv().Connect(ctx)
	if err != nil {
		log.Fatalf("failed to connect to dynamodb: %v", err)
	}
	return client
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
