package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// runCLI executes the root command with args and returns what it wrote to
// stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	prev := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = prev })

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeDocFile(t *testing.T, d *doc.Node) string {
	t.Helper()
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	return writeTemp(t, "slide.json", string(data))
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func parseDoc(t *testing.T, s string) *doc.Node {
	t.Helper()
	var d doc.Node
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, s)
	}
	return &d
}

func TestNormalizeCommand(t *testing.T) {
	path := writeDocFile(t, doc.NewDoc(
		doc.Row([]float64{1}, doc.Column(doc.P("solo"))),
		doc.Row([]float64{2}, doc.Column(doc.P("a")), doc.Column(doc.P("b"))),
	))
	out, err := runCLI(t, "normalize", path)
	if err != nil {
		t.Fatal(err)
	}
	want := doc.NewDoc(
		doc.P("solo"),
		doc.Row([]float64{2, 1}, doc.Column(doc.P("a")), doc.Column(doc.P("b"))),
	)
	if got := parseDoc(t, out); !got.Equal(want) {
		t.Errorf("normalize = %v, want %v", got, want)
	}
}

func TestNormalizeWritesFile(t *testing.T) {
	path := writeDocFile(t, doc.NewDoc(doc.P("x")))
	target := filepath.Join(t.TempDir(), "out.json")
	out, err := runCLI(t, "normalize", path, "-o", target)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !parseDoc(t, string(data)).Equal(doc.NewDoc(doc.P("x"))) {
		t.Errorf("file = %s", data)
	}
}

func TestDropCommand(t *testing.T) {
	flat := doc.NewDoc(doc.P("a"), doc.P("b"))
	inRow := doc.NewDoc(doc.Row([]float64{1, 1}, doc.Column(doc.P("a")), doc.Column(doc.P("b"))))

	tests := []struct {
		name string
		in   *doc.Node
		args []string
		want *doc.Node
	}{
		{
			name: "reorder",
			in:   flat,
			args: []string{"--source", "3", "--target", "0", "--edge", "top"},
			want: doc.NewDoc(doc.P("b"), doc.P("a")),
		},
		{
			name: "new row",
			in:   flat,
			args: []string{"--source", "3", "--target", "0", "--edge", "LEFT"},
			want: doc.NewDoc(doc.Row([]float64{1, 1}, doc.Column(doc.P("b")), doc.Column(doc.P("a")))),
		},
		{
			name: "edge not offered inside a column",
			in:   inRow,
			args: []string{"--source", "6", "--target", "2", "--edge", "left"},
			want: inRow,
		},
		{
			name: "out of the row collapses it",
			in:   doc.NewDoc(doc.Row([]float64{1, 1}, doc.Column(doc.P("a")), doc.Column(doc.P("b"))), doc.P("c")),
			args: []string{"--source", "7", "--target", "12", "--edge", "bottom"},
			want: doc.NewDoc(doc.P("a"), doc.P("c"), doc.P("b")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"drop", writeDocFile(t, tt.in)}, tt.args...)
			out, err := runCLI(t, args...)
			if err != nil {
				t.Fatal(err)
			}
			if got := parseDoc(t, out); !got.Equal(tt.want) {
				t.Errorf("drop = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDropCommandErrors(t *testing.T) {
	path := writeDocFile(t, doc.NewDoc(doc.P("a"), doc.P("b")))
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad edge", []string{"--source", "3", "--target", "0", "--edge", "middle"}, errors.ErrCodeInvalidEdge},
		{"no source block", []string{"--source", "1", "--target", "0", "--edge", "top"}, errors.ErrCodeInvalidPosition},
		{"no target block", []string{"--source", "3", "--target", "99", "--edge", "top"}, errors.ErrCodeInvalidPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"drop", path}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestEdgesCommand(t *testing.T) {
	path := writeDocFile(t, doc.NewDoc(doc.P("a"), doc.Row([]float64{1, 1}, doc.Column(doc.P("b")), doc.Column(doc.P("c")))))
	tests := []struct {
		target string
		source string
		want   string
	}{
		{"0", "image", "TOP,RIGHT,BOTTOM,LEFT"},
		{"0", "row", "TOP,BOTTOM"},
		{"3", "paragraph", "TOP,BOTTOM"},
		{"4", "chart", "RIGHT,LEFT"},
		{"5", "paragraph", "TOP,BOTTOM"},
	}
	for _, tt := range tests {
		out, err := runCLI(t, "edges", path, "--target", tt.target, "--source-type", tt.source)
		if err != nil {
			t.Fatalf("edges %s/%s: %v", tt.target, tt.source, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("edges at %s for %s = %q, want %q", tt.target, tt.source, got, tt.want)
		}
	}

	if _, err := runCLI(t, "edges", path, "--target", "0", "--source-type", "slide"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown source type: err = %v", err)
	}
}

func TestOutlineCommand(t *testing.T) {
	path := writeDocFile(t, doc.NewDoc(doc.H(1, "Title"), doc.P("body")))

	out, err := runCLI(t, "outline", path, "--positions")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"doc", `heading h1 "Title" @0`, `paragraph "body" @7`} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "outline", path, "-f", "dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "digraph G {") || !strings.Contains(out, `"n7"`) {
		t.Errorf("dot output:\n%s", out)
	}

	if _, err := runCLI(t, "outline", path, "-f", "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format: err = %v", err)
	}
}

func TestImportCommand(t *testing.T) {
	md := writeTemp(t, "talk.md", "# Intro\n\nHello *there*\n\n# Next\n\n- one\n- two\n")

	out, err := runCLI(t, "import", md)
	if err != nil {
		t.Fatal(err)
	}
	d := parseDoc(t, out)
	if d.ChildCount() != 4 || d.Child(0).Type != schema.Heading || d.Child(3).Type != schema.BulletList {
		t.Errorf("import = %v", d)
	}

	out, err = runCLI(t, "import", md, "--template", "--split", "--theme", "Ocean")
	if err != nil {
		t.Fatal(err)
	}
	var tmpl struct {
		Theme  struct{ Name string } `json:"theme"`
		Slides []json.RawMessage     `json:"slides"`
	}
	if err := json.Unmarshal([]byte(out), &tmpl); err != nil {
		t.Fatal(err)
	}
	if tmpl.Theme.Name != "Ocean" || len(tmpl.Slides) != 2 {
		t.Errorf("template theme %q with %d slides", tmpl.Theme.Name, len(tmpl.Slides))
	}

	if _, err := runCLI(t, "import", writeDocFile(t, d)); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("importing json: err = %v", err)
	}
}

func TestTemplateCommands(t *testing.T) {
	cfg := writeTemp(t, "config.toml", "[store]\nbackend = \"file\"\ndir = "+
		strconvQuote(t.TempDir())+"\n")
	md := writeTemp(t, "intro.md", "# Welcome\n")

	if _, err := runCLI(t, "--config", cfg, "template", "push", "intro", md); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "--config", cfg, "template", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "intro") {
		t.Errorf("list output:\n%s", out)
	}
	out, err = runCLI(t, "--config", cfg, "template", "pull", "intro")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Welcome") {
		t.Errorf("pull output:\n%s", out)
	}
	if _, err := runCLI(t, "--config", cfg, "template", "rm", "intro"); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "--config", cfg, "template", "pull", "intro"); !errors.Is(err, errors.ErrCodeTemplateNotFound) {
		t.Errorf("pull after delete: err = %v", err)
	}
}

func strconvQuote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func TestCatalogCommands(t *testing.T) {
	out, err := runCLI(t, "presets", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "3-center-heavy") || !strings.Contains(out, "1:2:1") || strings.Contains(out, "2-equal") {
		t.Errorf("presets 3:\n%s", out)
	}
	if _, err := runCLI(t, "presets", "9"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("presets 9: err = %v", err)
	}

	out, err = runCLI(t, "layouts", "title", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if d := parseDoc(t, out); d.Child(0).Type != schema.Heading {
		t.Errorf("layout title = %v", d)
	}
	if _, err := runCLI(t, "layouts", "nope"); !errors.Is(err, errors.ErrCodeLayoutNotFound) {
		t.Errorf("unknown layout: err = %v", err)
	}

	out, err = runCLI(t, "themes")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Warm Sepia") || !strings.Contains(out, "#") {
		t.Errorf("themes:\n%s", out)
	}
}

func TestConfigFlag(t *testing.T) {
	if _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "themes"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing config: err = %v", err)
	}
	cfg := writeTemp(t, "config.toml", "theme = \"Carbon\"\n")
	out, err := runCLI(t, "--config", cfg, "config")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `theme = "Carbon"`) {
		t.Errorf("config output:\n%s", out)
	}
}

func TestSavePath(t *testing.T) {
	tests := []struct {
		input, from, output string
		want                string
		wantErr             bool
	}{
		{input: "slide.json", want: "slide.json"},
		{input: "notes.md", want: "notes.json"},
		{input: "page.HTML", want: "page.json"},
		{input: "notes.txt", from: "markdown", want: "notes.json"},
		{input: "slide.json", output: "copy.json", want: "copy.json"},
		{input: "-", wantErr: true},
	}
	for _, tt := range tests {
		got, err := savePath(tt.input, tt.from, tt.output)
		if (err != nil) != tt.wantErr {
			t.Errorf("savePath(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("savePath(%q, %q, %q) = %q, want %q", tt.input, tt.from, tt.output, got, tt.want)
		}
	}
}
