package storage

import (
	"context"
	"fmt"
	"time"

	"todo-api/internal/domain/apperr"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// presignPutObject is a package-level indirection so tests can stub the
// presign call without a live endpoint.
var presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return pc.PresignPutObject(ctx, in, optFns...)
}

type S3AttachmentGateway struct {
	presignClient *s3.PresignClient
	bucketName    string
	urlExpiration time.Duration
}

var _ AttachmentGateway = (*S3AttachmentGateway)(nil)

func NewS3AttachmentGateway(presignClient *s3.PresignClient, bucketName string, urlExpiration time.Duration) *S3AttachmentGateway {
	return &S3AttachmentGateway{
		presignClient: presignClient,
		bucketName:    bucketName,
		urlExpiration: urlExpiration,
	}
}

// UploadUrl returns a presigned PUT URL for the object keyed by attachmentID,
// valid for the configured expiration window.
func (gateway *S3AttachmentGateway) UploadUrl(ctx context.Context, attachmentID string) (string, error) {
	req, err := presignPutObject(gateway.presignClient, ctx, &s3.PutObjectInput{
		Bucket: &gateway.bucketName,
		Key:    &attachmentID,
	}, s3.WithPresignExpires(gateway.urlExpiration))
	if err != nil {
		log.Errorf("Failed to presign upload URL for attachment %s: %v", attachmentID, err)
		return "", apperr.Storage(msg.GetMessage("todo.error.upload-url"), err)
	}

	return req.URL, nil
}

// AttachmentUrl derives the long-lived retrieval URL for an uploaded object.
func (gateway *S3AttachmentGateway) AttachmentUrl(attachmentID string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", gateway.bucketName, attachmentID)
}
