package contracts

import (
	"context"

	"agenda-service/internal/app/models"
)

// SadtClient talks to the authoritative document-generation service.
type SadtClient interface {
	// PrecisaSadt asks whether the appointment requires a SADT at all.
	PrecisaSadt(ctx context.Context, appointmentID int64) (bool, error)
	// GerarSadt returns the official document as a base64 PDF payload.
	GerarSadt(ctx context.Context, request *models.DocumentRequest) (string, error)
}

// DocumentResolver produces the best available printable document. It must
// not block or fail the booking flow: callers treat any error as advisory.
type DocumentResolver interface {
	Resolve(ctx context.Context, request *models.DocumentRequest) (*models.ResolvedDocument, error)
}

// DocumentArchive stores official PDFs for later reprints.
type DocumentArchive interface {
	Store(ctx context.Context, appointmentID int64, pdf []byte) error
	// Fetch returns nil bytes without error when the object does not exist.
	Fetch(ctx context.Context, appointmentID int64) ([]byte, error)
}
