package services

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/studio-landing/models"
	"github.com/rpupo63/studio-landing/view"
)

// maxConcurrentWrites bounds the number of pages rendered at once.
const maxConcurrentWrites = 8

// Exporter writes the landing page and its case studies as a static site.
type Exporter struct {
	site     models.Site
	projects []models.Project
	assets   fs.FS
}

// NewExporter prepares an export of projects. assets is copied verbatim
// under static/ so the pages' stylesheet links resolve.
func NewExporter(site models.Site, projects []models.Project, assets fs.FS) Exporter {
	return Exporter{site: site, projects: projects, assets: assets}
}

// Export renders every page into dir:
//
//	index.html                 landing page, all projects
//	work/<filter>/index.html   landing page under each filter
//	projects/<id>/index.html   one case study per project
//	static/...                 stylesheet
//
// Pages are written concurrently; the first failure cancels the rest.
func (e Exporter) Export(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentWrites)

	group.Go(func() error {
		page, err := e.landingPage(models.FilterAll)
		if err != nil {
			return err
		}
		return writeComponent(ctx, filepath.Join(dir, "index.html"), page)
	})

	for _, f := range models.Filters() {
		f := f
		group.Go(func() error {
			page, err := e.landingPage(f)
			if err != nil {
				return err
			}
			return writeComponent(ctx, filepath.Join(dir, "work", f.String(), "index.html"), page)
		})
	}

	for _, p := range e.projects {
		p := p
		group.Go(func() error {
			path := filepath.Join(dir, "projects", strconv.Itoa(p.ID), "index.html")
			return writeComponent(ctx, path, view.CaseStudyPage(e.site, p, true))
		})
	}

	group.Go(func() error {
		return copyAssets(ctx, e.assets, filepath.Join(dir, "static"))
	})

	if err := group.Wait(); err != nil {
		return err
	}

	log.Info().
		Str("dir", dir).
		Int("projects", len(e.projects)).
		Msg("Static site exported")
	return nil
}

// landingPage builds a fresh page view, selects f and renders it for the
// static site.
func (e Exporter) landingPage(f models.Filter) (templ.Component, error) {
	catalog := NewProjectCatalog(e.projects)
	if err := catalog.SetFilter(f); err != nil {
		return nil, err
	}
	data := view.NewPageData(e.site, catalog)
	data.Static = true
	return view.LandingPage(data), nil
}

func writeComponent(ctx context.Context, path string, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("exported file")
	return nil
}

func copyAssets(ctx context.Context, assets fs.FS, dir string) error {
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		return writeFile(filepath.Join(dir, filepath.FromSlash(path)), data)
	})
}
