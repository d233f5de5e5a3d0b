package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/lazyext"
	"github.com/vk/lazyext/internal/config"
	"github.com/vk/lazyext/internal/ctxlog"
	"github.com/vk/lazyext/registry"
)

// Version is the framework version, exposed as the namespace's eager
// 'version' attribute.
const Version = "0.1.0"

// App encapsulates the demo application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	loader    *registry.Registry
	namespace *lazyext.Namespace
	model     *config.Model
	cfg       *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Nothing is loaded
// here: extension initialization is deferred until an attribute is resolved
// in Run.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := config.NewModel()
	if cfg.ManifestPath != "" {
		loaded, err := loader.Load(ctx, cfg.ManifestPath)
		if err != nil {
			// A failure to load manifests is a fatal startup error.
			panic(fmt.Errorf("failed to load extension manifests: %w", err))
		}
		model = loaded
		logger.Debug("Manifests loaded and translated into unified model.")
	}

	extensions := make(map[string]string, len(builtinExtensions)+len(model.Extensions))
	for attr, id := range builtinExtensions {
		extensions[attr] = id
	}
	for attr, def := range model.Extensions {
		extensions[attr] = def.Package
	}

	reg := registry.Default()
	ns := lazyext.New(lazyext.Config{
		Name:       "lazyext",
		Loader:     reg,
		Attributes: map[string]any{"version": Version},
		Extensions: extensions,
	})
	logger.Debug("Namespace constructed.", "extensions", ns.Extensions())

	return &App{
		outW:      outW,
		logger:    logger,
		loader:    reg,
		namespace: ns,
		model:     model,
		cfg:       cfg,
	}
}

// Namespace returns the application's root namespace. Primarily for testing.
func (a *App) Namespace() *lazyext.Namespace {
	return a.namespace
}
