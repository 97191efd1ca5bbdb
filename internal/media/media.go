package media

import (
	"context"
	"io"
)

// Folders mirror the media host's directory layout for the three image kinds
// the directory stores.
const (
	FolderCompanyLogos        = "companies/logos"
	FolderEmployeeAvatars     = "employees/avatars"
	FolderEmployeeBackgrounds = "employees/backgrounds"
)

// File is an uploaded image on its way to the media host.
type File struct {
	Body        io.Reader
	ContentType string
}

// Store is the media host collaborator. Upload failures are fatal to the
// enclosing mutation; Delete failures are not — callers log and move on,
// because the database record is the source of truth and an orphaned remote
// object is a low-cost leak.
type Store interface {
	Upload(ctx context.Context, body io.Reader, contentType, folder string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}
