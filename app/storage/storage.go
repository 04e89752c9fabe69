package storage

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUpload marks a failed attachment upload.
	ErrUpload = errors.New("attachment upload failed")

	// ErrDelete marks a failed attachment deletion.
	ErrDelete = errors.New("attachment delete failed")
)

// Attachment is a stored object reference: the public URL readers see and the
// opaque id the store needs to delete the object later.
type Attachment struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// AttachmentStore wraps an external object-storage service. Source may be an
// io.Reader with binary content, a remote URL, or a base64 data URL; the
// store accepts any of them.
type AttachmentStore interface {
	Upload(ctx context.Context, source interface{}, folder string) (*Attachment, error)
	Delete(ctx context.Context, publicID string) error
}

// Disabled is an AttachmentStore that rejects every call. It stands in when
// no store credentials are configured, so posts without images keep working.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, source interface{}, folder string) (*Attachment, error) {
	return nil, fmt.Errorf("%w: attachment store not configured", ErrUpload)
}

func (Disabled) Delete(ctx context.Context, publicID string) error {
	return fmt.Errorf("%w: attachment store not configured", ErrDelete)
}
