package contracts

import (
	"context"
	"io"

	"agenda-service/internal/app/models"
)

// PrintWindowOpener abstracts the browsing context / print spool the rendered
// artifact is pushed into. Opening may legitimately fail (pop-ups blocked,
// spool unavailable); that is the deterministic PrintBlocked condition.
type PrintWindowOpener interface {
	Open(ctx context.Context, fileName string) (io.WriteCloser, error)
}

type PrintRenderer interface {
	// Render turns a resolved document into a deliverable job. Returns nil
	// for documents of kind none.
	Render(document *models.ResolvedDocument) (*models.PrintJob, error)
	// Print renders and pushes the job through the window opener, returning
	// the terminal state: printed, print_blocked or skipped.
	Print(ctx context.Context, document *models.ResolvedDocument) (string, error)
}
