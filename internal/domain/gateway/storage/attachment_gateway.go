package storage

import "context"

// AttachmentGateway issues storage URLs for attachment objects. UploadUrl is a
// time-limited presigned PUT; AttachmentUrl is the stable retrieval location
// derived from the attachment id alone, with no network call.
type AttachmentGateway interface {
	UploadUrl(ctx context.Context, attachmentID string) (string, error)
	AttachmentUrl(attachmentID string) string
}
