package database

import (
	"context"
	"fmt"

	appconfig "aerocode/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// LoadAWSConfig builds the shared SDK config. Static credentials are always
// set so local DynamoDB and MinIO work without an AWS profile.
func LoadAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}

// ConnectDynamoDB creates a DynamoDB client. A non-empty endpoint (for
// example http://dynamodb:8000) overrides the regional one.
func ConnectDynamoDB(ctx context.Context, awsCfg appconfig.AWSConfig, ddbCfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := LoadAWSConfig(ctx, awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if ddbCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(ddbCfg.Endpoint)
		}
	}), nil
}
