package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/geoknoesis/kastor-go/codegen"
	"github.com/geoknoesis/kastor-go/config"
	"github.com/geoknoesis/kastor-go/schema"
)

// debounceDelay is how long the watcher waits for more changes before
// regenerating.
const debounceDelay = 200 * time.Millisecond

// app drives one generation setup: resolved options plus the model
// document patterns from config.
type app struct {
	cfg    *config.Config
	opts   codegen.Options
	logger *slog.Logger
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, opts: opts, logger: logger}, nil
}

// resolveModels expands the configured glob patterns to a sorted,
// deduplicated list of model document paths.
func (a *app) resolveModels() ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range a.cfg.Input.Models {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no model documents match %v", a.cfg.Input.Models)
	}
	return paths, nil
}

// RunOnce resolves the model documents and generates all artifacts.
func (a *app) RunOnce() error {
	paths, err := a.resolveModels()
	if err != nil {
		return err
	}

	multi := len(paths) > 1
	for _, path := range paths {
		outDir := a.cfg.Output.Dir
		if multi {
			// Each document gets its own subdirectory so artifact
			// names cannot collide across models.
			outDir = filepath.Join(outDir, modelStem(path))
		}
		if err := a.generate(path, outDir); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) generate(modelPath, outDir string) error {
	start := time.Now()

	m, err := schema.Load(modelPath)
	if err != nil {
		return err
	}

	gen, err := codegen.New(a.opts, a.logger)
	if err != nil {
		return err
	}
	result, err := gen.Generate(m)
	if err != nil {
		return fmt.Errorf("generate %s: %w", modelPath, err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, artifact := range result.Artifacts {
		src, err := artifact.Render()
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, artifact.Filename)
		if err := os.WriteFile(path, src, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	a.logger.Info("Generated bindings",
		slog.String("model", modelPath),
		slog.String("out", outDir),
		slog.Int("artifacts", len(result.Artifacts)),
		slog.Int("skipped_classes", len(result.SkippedClasses)),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// Watch regenerates whenever a resolved model document changes. It
// watches the documents' directories (editors often replace files
// instead of writing in place) and debounces bursts of events.
func (a *app) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	paths, err := a.resolveModels()
	if err != nil {
		return err
	}

	watched := make(map[string]struct{})
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		a.logger.Debug("Watching directory", slog.String("path", dir))
	}

	a.logger.Info("Watching model documents",
		slog.Int("documents", len(watched)),
		slog.Duration("debounce", debounceDelay))

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, relevant := watched[abs]; !relevant {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			a.logger.Debug("Model document changed",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerC = timer.C
			} else {
				timer.Reset(debounceDelay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("Watcher error", slog.String("error", err.Error()))

		case <-timerC:
			timer = nil
			timerC = nil
			if err := a.RunOnce(); err != nil {
				// Keep watching: a broken intermediate save should not
				// kill the loop.
				a.logger.Error("Regeneration failed", slog.String("error", err.Error()))
			}
		}
	}
}

// modelStem returns the output subdirectory name for a model document:
// the file name without extensions ("person.model.json" → "person").
func modelStem(path string) string {
	base := filepath.Base(path)
	for {
		ext := filepath.Ext(base)
		if ext == "" {
			return base
		}
		base = base[:len(base)-len(ext)]
	}
}
