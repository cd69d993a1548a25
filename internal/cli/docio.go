package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	slideio "github.com/matzehuels/slidekit/pkg/io"
)

// Input formats accepted by --from.
const (
	formatJSON     = "json"
	formatHTML     = "html"
	formatMarkdown = "markdown"
)

// detectFormat picks the input format from the --from flag or the file
// extension. Standard input defaults to JSON.
func detectFormat(name, from string) (string, error) {
	if from != "" {
		switch strings.ToLower(from) {
		case "json":
			return formatJSON, nil
		case "html", "htm":
			return formatHTML, nil
		case "md", "markdown":
			return formatMarkdown, nil
		}
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q (json, html or markdown)", from)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return formatHTML, nil
	case ".md", ".markdown":
		return formatMarkdown, nil
	}
	return formatJSON, nil
}

// readDoc loads and validates a slide document.
func readDoc(name, from string) (*doc.Node, error) {
	format, err := detectFormat(name, from)
	if err != nil {
		return nil, err
	}
	f, err := openInput(name)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", name)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeDoc(f, format)
}

func decodeDoc(r io.Reader, format string) (*doc.Node, error) {
	switch format {
	case formatHTML:
		return slideio.ParseHTML(r)
	case formatMarkdown:
		return slideio.ParseMarkdown(r)
	}
	var d doc.Node
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode document")
	}
	if err := doc.Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// writeDoc writes d as indented JSON to output, or to w when output is
// empty.
func writeDoc(w io.Writer, d *doc.Node, output string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')
	return writeBytes(w, data, output)
}

func writeBytes(w io.Writer, data []byte, output string) error {
	if output == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printFile(output)
	return nil
}
