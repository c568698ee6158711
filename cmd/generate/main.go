package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"flames.blue/internal/config"
	"flames.blue/internal/markdown"
	"flames.blue/internal/services"
	"flames.blue/static"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       generate <output-dir> <theme>...  (export selected themes only)")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	themes := os.Args[2:]
	if len(themes) == 0 {
		themes = cfg.Registry.Themes()
	}

	if err := export(context.Background(), cfg, os.Args[1], themes, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

// export writes one page per theme, the default theme as index.html, the
// placeholder project lists and the static assets into outputDir.
func export(ctx context.Context, cfg *config.Config, outputDir string, themes []string, out io.Writer) error {
	staticDir := filepath.Join(outputDir, "static")
	projectsDir := filepath.Join(outputDir, "projects")
	for _, dir := range []string{staticDir, projectsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	pages := services.NewPageService(cfg.Registry, markdown.New(), cfg.SceneURL, nil)
	projects := services.NewProjectService(cfg.Registry)

	for _, theme := range themes {
		fmt.Fprintf(out, "Rendering %s theme...\n", theme)

		rep, err := pages.Audit(ctx, theme)
		if err != nil {
			return err
		}
		for _, issue := range rep.Issues {
			fmt.Fprintf(out, "  %s %s: %s\n", issue.Severity, issue.Code, issue.Message)
		}
		if rep.HasErrors() {
			return fmt.Errorf("%s: page audit reported %d errors", theme, len(rep.Errors()))
		}

		page, err := pages.Render(ctx, theme)
		if err != nil {
			return err
		}
		names := []string{theme + ".html"}
		if theme == cfg.DefaultTheme {
			names = append(names, "index.html")
		}
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(outputDir, name), page, 0644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			fmt.Fprintf(out, "  Created %s (%d bytes)\n", name, len(page))
		}

		list, err := projects.GetAll(theme)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal projects: %w", err)
		}
		name := theme + ".json"
		if err := os.WriteFile(filepath.Join(projectsDir, name), data, 0644); err != nil {
			return fmt.Errorf("write projects/%s: %w", name, err)
		}
		fmt.Fprintf(out, "  Created projects/%s (%d projects)\n", name, len(list.Projects))
	}

	return copyStatic(staticDir, out)
}

func copyStatic(dir string, out io.Writer) error {
	return fs.WalkDir(static.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static.FS, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, path), data, 0644); err != nil {
			return fmt.Errorf("write static/%s: %w", path, err)
		}
		fmt.Fprintf(out, "Copied static/%s\n", path)
		return nil
	})
}
