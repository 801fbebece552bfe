// Package external holds the narrow ports for collaborators the catalog
// calls but does not own: transactional email and asset storage.
package external

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Mailer sends a transactional template with a single link.
type Mailer interface {
	Send(to, subject, link string) error
}

// LogMailer logs instead of sending. Used in development and as the
// default when no provider is configured.
type LogMailer struct{}

func (LogMailer) Send(to, subject, link string) error {
	log.Printf("mail: to=%s subject=%q link=%s", to, subject, link)
	return nil
}

// AssetStore uploads an image and returns a public URL plus the provider's
// file id. Raw bytes never land in the database.
type AssetStore interface {
	Upload(name string, data []byte) (url, fileID string, err error)
}

// LocalAssetStore fabricates stable URLs without a real provider behind it.
type LocalAssetStore struct {
	BaseURL string
}

func (s LocalAssetStore) Upload(name string, data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("empty upload %q", name)
	}
	fileID := uuid.NewString()
	base := s.BaseURL
	if base == "" {
		base = "/assets"
	}
	return fmt.Sprintf("%s/%s-%s", base, fileID, name), fileID, nil
}
