package project

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/qfg-dev/qfg/internal/defs"
)

// Reporter receives generation progress. Begin is called once with the
// number of files about to be written, Wrote once per file, End at the end.
type Reporter interface {
	Begin(total int)
	Wrote(relPath string)
	End()
}

type nopReporter struct{}

func (nopReporter) Begin(int)     {}
func (nopReporter) Wrote(string) {}
func (nopReporter) End()         {}

// writeArtifacts writes every artifact below root in order, creating parent
// directories as needed. The context is checked before each write.
func writeArtifacts(ctx context.Context, root string, arts []artifact, logger *slog.Logger, rep Reporter) ([]string, error) {
	rep.Begin(len(arts))
	defer rep.End()

	written := make([]string, 0, len(arts))
	for _, a := range arts {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := writeFile(root, a.relPath, a.content); err != nil {
			return written, err
		}
		logger.Debug("wrote artifact", "kind", a.kind, "path", a.relPath, "bytes", len(a.content))
		written = append(written, a.relPath)
		rep.Wrote(a.relPath)
	}
	return written, nil
}

// writeFile replaces root/relPath with content.
func writeFile(root, relPath string, content []byte) error {
	full := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), defs.DirPerm); err != nil {
		return fmt.Errorf("create directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(full, content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

// ensureLine appends line to the file at root/relPath unless an identical
// line is already present. The file is created if missing. It reports
// whether the file changed.
func ensureLine(root, relPath, line string) (bool, error) {
	full := filepath.Join(root, filepath.FromSlash(relPath))
	existing, err := os.ReadFile(full)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("read %s: %w", relPath, err)
	}

	for _, l := range strings.Split(string(existing), "\n") {
		if strings.TrimSpace(l) == line {
			return false, nil
		}
	}

	var buf bytes.Buffer
	buf.Write(existing)
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(line)
	buf.WriteByte('\n')

	if err := writeFile(root, relPath, buf.Bytes()); err != nil {
		return false, err
	}
	return true, nil
}

// fileExists reports whether root/relPath exists.
func fileExists(root, relPath string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(relPath)))
	return err == nil
}
