package site

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ppmconsultants/ppmsite/internal/content"
	"github.com/ppmconsultants/ppmsite/internal/progress"
	"github.com/ppmconsultants/ppmsite/internal/web"
)

func newGenerator(t *testing.T, out string) *Generator {
	t.Helper()
	store, err := content.NewStore("")
	require.NoError(t, err)
	g := NewGenerator(web.New(web.Options{Content: store}), out)
	g.Logger = zaptest.NewLogger(t)
	return g
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		route, want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/about", "about/index.html"},
		{"/services/", "services/index.html"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.route); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	g := newGenerator(t, out)
	var buf bytes.Buffer
	g.Reporter = &progress.CIReporter{Out: &buf}

	n, err := g.Generate(context.Background())
	require.NoError(t, err)

	want := len(web.Pages) + 1 + len(web.StaticFiles())
	assert.Equal(t, want, n)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<title>PPM Consultants | Professional Business Consulting</title>")

	about, err := os.ReadFile(filepath.Join(out, "about", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(about), "About Us | PPM Consultants")

	notFound, err := os.ReadFile(filepath.Join(out, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "404")

	for path, body := range web.StaticFiles() {
		got, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(strings.TrimPrefix(path, "/"))))
		require.NoError(t, err, path)
		assert.Equal(t, body, string(got), path)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, want+2)
	assert.Equal(t, "Export complete", lines[len(lines)-1])
}

func TestGenerateCopiesImages(t *testing.T) {
	images := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(images, "hero"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(images, "hero", "one.jpg"), []byte("jpg"), 0o644))

	out := t.TempDir()
	g := newGenerator(t, out)
	g.ImagesDir = images

	n, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(web.Pages)+1+len(web.StaticFiles())+1, n)

	data, err := os.ReadFile(filepath.Join(out, "images", "hero", "one.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpg", string(data))
}

type failingRenderer struct{}

var errRender = errors.New("render failed")

func (failingRenderer) Render(io.Writer, string) (bool, error) { return false, errRender }
func (failingRenderer) RenderNotFound(io.Writer) error         { return nil }

func TestGenerateStopsOnRenderError(t *testing.T) {
	g := NewGenerator(failingRenderer{}, t.TempDir())
	g.Workers = 1

	_, err := g.Generate(context.Background())
	require.ErrorIs(t, err, errRender)
}

func TestGenerateCancelled(t *testing.T) {
	g := newGenerator(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
