package app

import (
	"context"
	"fmt"

	"github.com/vk/lazyext/extensions/envinfo"
	"github.com/vk/lazyext/extensions/httpclient"
	"github.com/vk/lazyext/extensions/socketio"
	"github.com/vk/lazyext/extensions/supertool"
	"github.com/vk/lazyext/internal/ctxlog"
)

// Configurable is implemented by extension namespaces that accept manifest
// settings.
type Configurable interface {
	Configure(settings map[string]any) error
}

// Run resolves each requested attribute and reports the outcome, showing the
// loaded-set state before and after each resolution.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	fmt.Fprintf(a.outW, "Registered extension packages: %v\n", a.loader.IDs())
	fmt.Fprintf(a.outW, "Namespace '%s' v%s, virtual attributes: %v\n",
		a.namespace.Name(), Version, a.namespace.Extensions())

	for _, attr := range a.cfg.Attrs {
		if err := a.resolveAndReport(ctx, attr); err != nil {
			return err
		}
	}
	return nil
}

// resolveAndReport resolves one attribute and exercises the value it
// resolves to.
func (a *App) resolveAndReport(ctx context.Context, attr string) error {
	pkg, virtual := a.namespace.Extension(attr)
	if virtual {
		fmt.Fprintf(a.outW, "[check] package '%s' loaded: %v\n", pkg, a.loader.Loaded(pkg))
	}

	handle, err := a.namespace.Resolve(ctx, attr)
	if err != nil {
		return err
	}

	if virtual {
		fmt.Fprintf(a.outW, "[check] package '%s' loaded: %v\n", pkg, a.loader.Loaded(pkg))
	}

	// Manifest settings are applied by the caller after resolution; the
	// resolver itself only hands back the loaded value.
	if def, ok := a.model.Extensions[attr]; ok && def.Settings != nil {
		if c, ok := handle.(Configurable); ok {
			if err := c.Configure(def.Settings); err != nil {
				return fmt.Errorf("failed to apply settings for '%s': %w", attr, err)
			}
			a.logger.Debug("Applied manifest settings.", "attr", attr)
		}
	}

	switch h := handle.(type) {
	case *supertool.Namespace:
		tool := h.NewSuperTool()
		fmt.Fprintf(a.outW, "Result: %s\n", tool.Run())
	case *envinfo.Namespace:
		fmt.Fprintf(a.outW, "Environment variables visible: %d\n", len(h.All()))
	case *httpclient.Namespace:
		client, err := h.NewClient("30s")
		if err != nil {
			return err
		}
		defer h.Release(client)
		fmt.Fprintf(a.outW, "HTTP client ready, timeout %s\n", client.Timeout)
	case *socketio.Namespace:
		fmt.Fprintf(a.outW, "Socket.IO probe client ready\n")
	default:
		fmt.Fprintf(a.outW, "Resolved '%s' to %T\n", attr, handle)
	}
	return nil
}
