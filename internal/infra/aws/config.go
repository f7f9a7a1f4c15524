package aws

import (
	"context"
	"log"

	"todo-api/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

var Config aws.Config

func init() {
	optFns := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	// Check if custom credentials are provided (e.g. LocalStack / MinIO)
	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		secretKey := resource.GetString("app.cloud.aws-secret-access-key")
		if secretKey != "" {
			optFns = append(optFns, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
		}
	}
	// If no custom credentials are provided, the SDK uses the default
	// credential chain (environment variables, IAM roles, etc.)

	cfg, err := config.LoadDefaultConfig(context.Background(), optFns...)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	Config = cfg
}

// Endpoint returns the custom AWS endpoint when one is configured (LocalStack),
// or an empty string for the real AWS endpoints.
func Endpoint() string {
	return resource.GetString("app.cloud.aws-endpoint")
}
