package ports

import (
	"context"
	"io"
)

// UploadKind discriminates which entity an uploaded file is attached to.
type UploadKind string

const (
	UploadKindUser     UploadKind = "user"
	UploadKindAnimal   UploadKind = "animal"
	UploadKindTraining UploadKind = "training"
)

// UploadInput carries an ownership-checked file upload. For UploadKindUser the
// transport layer forces TargetID to the caller's own identifier.
type UploadInput struct {
	CallerID string
	Kind     UploadKind
	TargetID string
	File     io.Reader
}

// UploadService relays a file to the external storage worker and persists the
// resulting public URL on the owning record.
type UploadService interface {
	Upload(ctx context.Context, input UploadInput) error
}
