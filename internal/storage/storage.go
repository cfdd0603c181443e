package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ImageStore persists an object and returns its public URL.
// Delete of a missing key is not an error.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

func PropertyImageKey(propertyID uint, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("properties/%d/%s%s", propertyID, uuid.NewString(), ext)
}
