package contactRepo

import (
	"context"

	"photostudio/models"
)

// ContactRepository defines methods for contact message data access.
type ContactRepository interface {
	// Create inserts a new contact message, stamping its creation time.
	Create(ctx context.Context, msg *models.ContactMessage) error
	EnsureIndexes(ctx context.Context) error
}
