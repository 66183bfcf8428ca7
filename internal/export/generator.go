// Package export renders the portfolio to a directory of static HTML files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/assets"
	"github.com/khadija-altaf/folio/internal/catalog"
	"github.com/khadija-altaf/folio/internal/clock"
	"github.com/khadija-altaf/folio/internal/logger"
	"github.com/khadija-altaf/folio/internal/progress"
	"github.com/khadija-altaf/folio/internal/router"
	"github.com/khadija-altaf/folio/internal/storage"
	"github.com/khadija-altaf/folio/internal/web"
)

const (
	settleStep = time.Second
	maxSettle  = 10 * time.Minute
)

// Generator renders every page of the portfolio into OutputDir.
type Generator struct {
	OutputDir string
	Catalog   *catalog.Catalog
	Assets    *assets.Dir
	Dark      bool
	Now       time.Time
	Reporter  progress.Reporter
	Log       *logger.Logger
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(outputDir string, c *catalog.Catalog, dir *assets.Dir) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Catalog:   c,
		Assets:    dir,
	}
}

// Result summarizes an export.
type Result struct {
	Pages  int
	Assets int
}

// Generate writes the eight pages, the 404 page, the stylesheet and the
// allowed asset files.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	var res Result

	renderer, err := web.NewRenderer(false)
	if err != nil {
		return res, err
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop()
	}
	now := g.Now
	if now.IsZero() {
		now = time.Now()
	}

	var files []string
	if g.Assets != nil {
		if files, err = g.Assets.List(); err != nil {
			return res, fmt.Errorf("listing assets: %w", err)
		}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("creating output directory: %w", err)
	}

	// Pages are rendered from a session driven by a manual clock, so typing
	// and transitions are complete in the written HTML.
	clk := clock.NewManual(now)
	s := app.NewSession(ctx, "export", storage.NewMemory(), app.Options{
		Catalog: g.Catalog,
		Clock:   clk,
		Log:     g.Log,
	})
	defer s.Close()
	if g.Dark && !s.Dark() {
		if _, err := s.ToggleTheme(ctx); err != nil {
			return res, err
		}
	}

	routes := router.Routes()
	total := len(routes) + 1 + len(files)
	reporter.Start(total, "Exporting site")
	step := 0

	for _, route := range routes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := s.Navigate(route.Path); err != nil {
			return res, fmt.Errorf("navigating to %s: %w", route.Path, err)
		}
		settle(clk)

		snap, err := s.Snapshot()
		if err != nil {
			return res, err
		}
		var buf bytes.Buffer
		if err := renderer.Page(&buf, snap); err != nil {
			return res, err
		}
		rel := PagePath(route.Path)
		if err := g.write(rel, buf.Bytes()); err != nil {
			return res, err
		}
		res.Pages++
		step++
		reporter.Update(step, rel)
	}

	snap, err := s.Snapshot()
	if err != nil {
		return res, err
	}
	var buf bytes.Buffer
	if err := renderer.NotFound(&buf, snap); err != nil {
		return res, err
	}
	if err := g.write("404.html", buf.Bytes()); err != nil {
		return res, err
	}
	step++
	reporter.Update(step, "404.html")

	if err := g.write(filepath.Join("assets", "folio.css"), web.Stylesheet()); err != nil {
		return res, err
	}

	if g.Assets != nil {
		n, err := g.Assets.CopyTo(filepath.Join(g.OutputDir, "assets"), func(rel string) {
			step++
			reporter.Update(step, "assets/"+rel)
		})
		res.Assets = n
		if err != nil {
			return res, fmt.Errorf("copying assets: %w", err)
		}
		if err := g.copyResume(); err != nil {
			return res, err
		}
	}

	reporter.Finish()
	g.Log.WithFields(map[string]any{
		"pages":  res.Pages,
		"assets": res.Assets,
		"output": g.OutputDir,
	}).Info("site exported")
	return res, nil
}

// PagePath returns the file a route is written to: index.html for the root
// and <path>/index.html for the rest.
func PagePath(routePath string) string {
	p := strings.Trim(routePath, "/")
	if p == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(p), "index.html")
}

// settle fires every pending timer of clk.
func settle(clk *clock.Manual) {
	for elapsed := time.Duration(0); clk.Pending() > 0 && elapsed < maxSettle; elapsed += settleStep {
		clk.Advance(settleStep)
	}
}

// copyResume places a local resume at the site root path the pages link to.
func (g *Generator) copyResume() error {
	if g.Catalog == nil || g.Assets.Root() == "" {
		return nil
	}
	resume := g.Catalog.Personal.Resume
	if !strings.HasPrefix(resume, "/") || strings.HasPrefix(resume, "//") {
		return nil
	}
	rel := strings.TrimPrefix(resume, "/")
	if !g.Assets.Allowed(rel) {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(g.Assets.Root(), filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		g.Log.Warn("resume not found in assets: " + rel)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}
	return g.write(filepath.FromSlash(rel), data)
}

func (g *Generator) write(rel string, data []byte) error {
	dst := filepath.Join(g.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
