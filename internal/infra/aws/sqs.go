package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsClient builds the SQS client used by the event sender and workers
func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(o *sqs.Options) {
		if endpoint := Endpoint(); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
