// Package extract resolves an input document into its plain text.
// Document-format specifics stay here; the pipeline only ever sees
// the extracted string.
package extract

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/opencouncil/scribe/pkg/scribe/internalerr"
)

// Source supplies the full page-ordered text of one document.
type Source interface {
	Text() (string, error)
}

// FileSource reads an already-extracted plain-text document.
type FileSource struct {
	Path string
}

// Text returns the file contents as a single string.
func (s FileSource) Text() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %v: %w", s.Path, err, internalerr.ErrSourceUnavailable)
	}
	return string(data), nil
}

// PDFSource extracts text from a PDF by invoking the pdftotext tool.
type PDFSource struct {
	Path string
}

// Text runs pdftotext and returns its stdout.
func (s PDFSource) Text() (string, error) {
	out, err := exec.Command("pdftotext", s.Path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext %s: %v: %w", s.Path, err, internalerr.ErrSourceUnavailable)
	}
	return string(out), nil
}

// ForPath picks a Source based on the file extension. PDFs go through
// pdftotext; everything else is read as plain text.
func ForPath(path string) Source {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return PDFSource{Path: path}
	}
	return FileSource{Path: path}
}
