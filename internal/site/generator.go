// Package site exports the rendered marketing site as static files.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ppmconsultants/ppmsite/internal/progress"
	"github.com/ppmconsultants/ppmsite/internal/web"
)

const defaultWorkers = 4

// Renderer produces page bodies. *web.Handler satisfies it.
type Renderer interface {
	Render(w io.Writer, path string) (bool, error)
	RenderNotFound(w io.Writer) error
}

// Generator writes every page, the 404 page and the built-in assets under
// OutputDir.
type Generator struct {
	OutputDir string
	// ImagesDir, when set, is copied to OutputDir/images.
	ImagesDir string
	Workers   int
	Reporter  progress.Reporter
	Logger    *zap.Logger

	pages Renderer
}

// NewGenerator creates a Generator rendering pages with r.
func NewGenerator(r Renderer, outputDir string) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Workers:   defaultWorkers,
		Reporter:  progress.Nop{},
		Logger:    zap.NewNop(),
		pages:     r,
	}
}

type file struct {
	rel    string
	render func(w io.Writer) error
}

// Generate builds the static site. Returns the number of files written.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	files := g.plan()
	g.Reporter.Start(len(files))
	defer g.Reporter.Finish()

	workers := g.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		mu   sync.Mutex
		done int
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, f := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.write(f); err != nil {
				return fmt.Errorf("writing %s: %w", f.rel, err)
			}
			mu.Lock()
			done++
			g.Reporter.Update(done, f.rel)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return done, err
	}

	n := len(files)
	if g.ImagesDir != "" {
		copied, err := copyDir(g.ImagesDir, filepath.Join(g.OutputDir, "images"))
		if err != nil {
			return n, fmt.Errorf("copying images: %w", err)
		}
		n += copied
	}
	g.Logger.Info("site exported", zap.String("dir", g.OutputDir), zap.Int("files", n))
	return n, nil
}

func (g *Generator) plan() []file {
	var files []file
	for _, path := range web.Pages {
		files = append(files, file{
			rel: OutputPath(path),
			render: func(w io.Writer) error {
				ok, err := g.pages.Render(w, path)
				if err == nil && !ok {
					err = fmt.Errorf("no page for %s", path)
				}
				return err
			},
		})
	}
	files = append(files, file{rel: "404.html", render: g.pages.RenderNotFound})

	static := web.StaticFiles()
	paths := make([]string, 0, len(static))
	for p := range static {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		body := static[p]
		files = append(files, file{
			rel: strings.TrimPrefix(p, "/"),
			render: func(w io.Writer) error {
				_, err := io.WriteString(w, body)
				return err
			},
		})
	}
	return files
}

func (g *Generator) write(f file) error {
	var buf bytes.Buffer
	if err := f.render(&buf); err != nil {
		return err
	}
	dest := filepath.Join(g.OutputDir, filepath.FromSlash(f.rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, buf.Bytes(), 0o644)
}

// OutputPath maps a route to its file: "/" is index.html and "/about" is
// about/index.html so links keep working without a rewrite rule.
func OutputPath(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return route + "/index.html"
}

// copyDir recursively copies a directory and returns the number of files.
func copyDir(src, dst string) (int, error) {
	n := 0
	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(destPath, 0o755)
		}

		n++
		return copyFile(path, destPath)
	})
	return n, err
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
