package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3PresignClient builds the presign client used for attachment upload URLs
func NewS3PresignClient() *s3.PresignClient {
	client := s3.NewFromConfig(Config, func(o *s3.Options) {
		if endpoint := Endpoint(); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // Required for LocalStack
		}
	})

	return s3.NewPresignClient(client)
}
