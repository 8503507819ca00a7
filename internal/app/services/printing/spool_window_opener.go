package printing

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"agenda-service/internal/app/contracts"
)

var (
	spoolWindowOpenerInstance contracts.PrintWindowOpener
	onceSpoolWindowOpener     sync.Once
)

// spoolWindowOpener writes print jobs into a spool directory picked up by the
// reception workstation. Creation failures map to the blocked state upstream.
type spoolWindowOpener struct {
	Dir string
}

func NewSpoolWindowOpener(dir string) contracts.PrintWindowOpener {
	onceSpoolWindowOpener.Do(func() {
		spoolWindowOpenerInstance = &spoolWindowOpener{Dir: dir}
	})
	return spoolWindowOpenerInstance
}

func (o *spoolWindowOpener) Open(_ context.Context, fileName string) (io.WriteCloser, error) {
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(o.Dir, filepath.Base(fileName)))
}
