package web

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ericfisherdev/portfolio/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/portfolio/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/portfolio/internal/application"
)

// Export renders the page as a static site into dir: index.html plus the
// embedded assets under static/. Counters animate client-side and the
// contact form is replaced by a mailto link, since no server backs the
// exported files.
func Export(ctx context.Context, svc *application.PortfolioService, dir string, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	page := toPageViewModel(svc.Overview(), pageOptions{})

	indexPath := filepath.Join(dir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}

	if err := templates.Layout(page.Title, pages.Portfolio(page)).Render(ctx, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close index.html: %w", err)
	}
	logger.Info("wrote page", "path", indexPath)

	staticFS, err := fs.Sub(StaticFS, "static")
	if err != nil {
		return fmt.Errorf("open embedded assets: %w", err)
	}

	n, err := copyFS(staticFS, filepath.Join(dir, "static"))
	if err != nil {
		return err
	}
	logger.Info("wrote static assets", "count", n, "dir", filepath.Join(dir, "static"))

	return nil
}

// copyFS writes every regular file of src under dst and returns the number
// of files written.
func copyFS(src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}
