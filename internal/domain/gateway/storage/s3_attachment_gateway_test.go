package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"todo-api/internal/domain/apperr"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadUrl(t *testing.T) {
	original := presignPutObject
	defer func() { presignPutObject = original }()

	var gotBucket, gotKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket = *in.Bucket
		gotKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://signed.example.com/upload"}, nil
	}

	gateway := NewS3AttachmentGateway(nil, "todo-attachments", 300*time.Second)

	url, err := gateway.UploadUrl(context.Background(), "att-1")
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/upload", url)
	assert.Equal(t, "todo-attachments", gotBucket)
	assert.Equal(t, "att-1", gotKey)
}

func TestUploadUrlFailure(t *testing.T) {
	original := presignPutObject
	defer func() { presignPutObject = original }()

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, fmt.Errorf("credentials expired")
	}

	gateway := NewS3AttachmentGateway(nil, "todo-attachments", 300*time.Second)

	_, err := gateway.UploadUrl(context.Background(), "att-1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestAttachmentUrl(t *testing.T) {
	gateway := NewS3AttachmentGateway(nil, "todo-attachments", 300*time.Second)

	assert.Equal(t, "https://todo-attachments.s3.amazonaws.com/att-1", gateway.AttachmentUrl("att-1"))
}
