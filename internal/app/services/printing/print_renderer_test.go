package printing

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubOpener struct {
	buffer  bytes.Buffer
	openErr error
	opened  string
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (s *stubOpener) Open(_ context.Context, fileName string) (io.WriteCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.opened = fileName
	return nopWriteCloser{&s.buffer}, nil
}

func newRendererFixture(openErr error) (*printRenderer, *stubOpener) {
	opener := &stubOpener{openErr: openErr}
	return &printRenderer{Opener: opener, Log: zap.NewNop()}, opener
}

func TestPrintRendererRender(t *testing.T) {
	renderer, _ := newRendererFixture(nil)

	t.Run("remote pdf decodes without auto print", func(t *testing.T) {
		job, err := renderer.Render(&models.ResolvedDocument{
			Kind:      constvars.DocumentKindRemotePDF,
			FileName:  "sadt-42.pdf",
			PDFBase64: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.MIMEApplicationPDF, job.ContentType)
		assert.Equal(t, []byte("%PDF-1.4"), job.Body)
		assert.False(t, job.AutoPrint, "official documents are printed manually")
	})

	t.Run("invalid base64 payload is an error", func(t *testing.T) {
		_, err := renderer.Render(&models.ResolvedDocument{
			Kind:      constvars.DocumentKindRemotePDF,
			PDFBase64: "not-base64!!",
		})

		assert.Error(t, err)
	})

	t.Run("local preview gets the deferred print script", func(t *testing.T) {
		job, err := renderer.Render(&models.ResolvedDocument{
			Kind:     constvars.DocumentKindLocalPreviewHTML,
			FileName: "sadt-previa-42.html",
			HTML:     "<html><body><p>preview</p></body></html>",
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.MIMETextHTMLCharsetUTF8, job.ContentType)
		assert.True(t, job.AutoPrint)
		body := string(job.Body)
		assert.Contains(t, body, "window.print()")
		assert.Contains(t, body, "500")
		assert.Less(t, bytes.Index(job.Body, []byte("window.print")), bytes.Index(job.Body, []byte("</body>")),
			"script must be injected inside the body")
	})

	t.Run("kind none renders nothing", func(t *testing.T) {
		job, err := renderer.Render(&models.ResolvedDocument{Kind: constvars.DocumentKindNone})

		assert.NoError(t, err)
		assert.Nil(t, job)
	})
}

func TestPrintRendererPrint(t *testing.T) {
	ctx := context.Background()

	t.Run("delivered job ends printed", func(t *testing.T) {
		renderer, opener := newRendererFixture(nil)

		state, err := renderer.Print(ctx, &models.ResolvedDocument{
			Kind:     constvars.DocumentKindLocalPreviewHTML,
			FileName: "comprovante-42.html",
			HTML:     "<html><body></body></html>",
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentStatePrinted, state)
		assert.Equal(t, "comprovante-42.html", opener.opened)
		assert.NotZero(t, opener.buffer.Len())
	})

	t.Run("blocked opener ends print_blocked", func(t *testing.T) {
		renderer, _ := newRendererFixture(errors.New("popup blocked"))

		state, err := renderer.Print(ctx, &models.ResolvedDocument{
			Kind:     constvars.DocumentKindLocalPreviewHTML,
			FileName: "comprovante-42.html",
			HTML:     "<html><body></body></html>",
		})

		assert.Error(t, err)
		assert.Equal(t, constvars.DocumentStatePrintBlocked, state)
	})

	t.Run("nothing to print ends skipped", func(t *testing.T) {
		renderer, opener := newRendererFixture(nil)

		state, err := renderer.Print(ctx, &models.ResolvedDocument{Kind: constvars.DocumentKindNone})

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentStateSkipped, state)
		assert.Empty(t, opener.opened, "no window should be opened")
	})
}
