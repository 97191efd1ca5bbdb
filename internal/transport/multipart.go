package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/frahmantamala/hr-directory/internal/media"
)

// MaxUploadSize caps image uploads at 5MB, matching the media host's limit.
const MaxUploadSize = 5 << 20

var ErrNotAnImage = errors.New("only images are allowed")

// IsMultipart reports whether the request carries multipart form data.
func IsMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// FormPtr returns the form value for key, or nil when the field was absent.
// Callers use the nil/non-nil distinction for partial updates.
func FormPtr(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if vs, ok := r.MultipartForm.Value[key]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}

// ImageFromForm pulls an optional image upload out of a parsed multipart form.
// A missing file is not an error; a non-image upload is.
func ImageFromForm(r *http.Request, field string) (*media.File, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		file.Close()
		return nil, ErrNotAnImage
	}

	return &media.File{Body: file, ContentType: contentType}, nil
}
