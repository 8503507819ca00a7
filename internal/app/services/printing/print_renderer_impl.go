package printing

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// autoPrintScript fires window.print after the page settles so styles are
// applied before the dialog opens. Injected only into local previews;
// official PDFs are printed manually by the receptionist.
const autoPrintScript = `<script>window.addEventListener("load",function(){setTimeout(function(){window.print()},500)});</script>`

var (
	printRendererInstance contracts.PrintRenderer
	oncePrintRenderer     sync.Once
)

type printRenderer struct {
	Opener contracts.PrintWindowOpener
	Log    *zap.Logger
}

func NewPrintRenderer(opener contracts.PrintWindowOpener, logger *zap.Logger) contracts.PrintRenderer {
	oncePrintRenderer.Do(func() {
		printRendererInstance = &printRenderer{
			Opener: opener,
			Log:    logger,
		}
	})
	return printRendererInstance
}

func (r *printRenderer) Render(document *models.ResolvedDocument) (*models.PrintJob, error) {
	if document == nil || document.Kind == constvars.DocumentKindNone {
		return nil, nil
	}

	switch document.Kind {
	case constvars.DocumentKindRemotePDF:
		pdf, err := base64.StdEncoding.DecodeString(document.PDFBase64)
		if err != nil {
			return nil, exceptions.ErrDocumentDecodePayload(err)
		}
		return &models.PrintJob{
			ContentType: constvars.MIMEApplicationPDF,
			FileName:    document.FileName,
			Body:        pdf,
			AutoPrint:   false,
		}, nil
	case constvars.DocumentKindLocalPreviewHTML:
		html := injectAutoPrint(document.HTML)
		return &models.PrintJob{
			ContentType: constvars.MIMETextHTMLCharsetUTF8,
			FileName:    document.FileName,
			Body:        []byte(html),
			AutoPrint:   true,
		}, nil
	default:
		return nil, nil
	}
}

func (r *printRenderer) Print(ctx context.Context, document *models.ResolvedDocument) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	job, err := r.Render(document)
	if err != nil {
		r.Log.Error("printRenderer.Print error rendering document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return constvars.DocumentStateSkipped, err
	}
	if job == nil {
		return constvars.DocumentStateSkipped, nil
	}

	writer, err := r.Opener.Open(ctx, job.FileName)
	if err != nil {
		r.Log.Warn("printRenderer.Print print window blocked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("file_name", job.FileName),
			zap.Error(err),
		)
		return constvars.DocumentStatePrintBlocked, exceptions.ErrPrintWindowBlocked(err)
	}

	if _, err := writer.Write(job.Body); err != nil {
		writer.Close()
		return constvars.DocumentStatePrintBlocked, exceptions.ErrPrintWindowWrite(err)
	}
	if err := writer.Close(); err != nil {
		return constvars.DocumentStatePrintBlocked, exceptions.ErrPrintWindowWrite(err)
	}

	r.Log.Info("printRenderer.Print job delivered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("file_name", job.FileName),
		zap.Bool("auto_print", job.AutoPrint),
	)
	return constvars.DocumentStatePrinted, nil
}

func injectAutoPrint(html string) string {
	if idx := strings.LastIndex(html, "</body>"); idx >= 0 {
		return html[:idx] + autoPrintScript + html[idx:]
	}
	return html + autoPrintScript
}
