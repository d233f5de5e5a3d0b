// Package socketio is an optional extension exposing a Socket.IO probe
// client. The client stack behind it is heavyweight, which is exactly why it
// is distributed as a lazily loaded extension: a process that never touches
// the attribute never initializes it. Importing the package registers the
// 'socketio' package on the default registry.
package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/lazyext/internal/ctxlog"
	"github.com/vk/lazyext/registry"
)

// PackageID is the identifier this extension registers under.
const PackageID = "socketio"

func init() {
	registry.Register(PackageID, func(ctx context.Context) (any, error) {
		return NewNamespace(), nil
	})
}

// Namespace exposes the Socket.IO probe. The factory is cheap; all network
// work happens in Probe with the caller's context.
type Namespace struct{}

// NewNamespace creates the extension namespace.
func NewNamespace() *Namespace {
	return &Namespace{}
}

// ProbeInput defines the arguments for a single connect-and-emit probe.
type ProbeInput struct {
	URL                string
	Namespace          string
	EmitEvent          string
	EmitData           any
	Timeout            string
	InsecureSkipVerify bool
}

// probeResult is a private struct to safely pass the outcome through the
// done channel.
type probeResult struct {
	err error
}

// Probe connects to a Socket.IO server, optionally emits one event after
// connecting, and reports whether everything succeeded within the timeout.
func (n *Namespace) Probe(ctx context.Context, input *ProbeInput) error {
	logger := ctxlog.FromContext(ctx).With("extension", PackageID, "url", input.URL, "emitEvent", input.EmitEvent)
	logger.Debug("Probe started")
	defer logger.Debug("Probe finished")

	var isConnected atomic.Bool

	timeout, err := time.ParseDuration(input.Timeout)
	if err != nil {
		logger.Warn("Failed to parse timeout, using default 10s", "inputTimeout", input.Timeout, "error", err)
		timeout = 10 * time.Second
	}

	parsedURL, err := url.Parse(input.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)

	if input.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	done := make(chan probeResult, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(input.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Successfully connected", "namespace", input.Namespace, "sid", io.Id())
		if input.EmitEvent != "" {
			logger.Info("Emitting event", "event", input.EmitEvent)
			io.Emit(input.EmitEvent, input.EmitData)
		}
		done <- probeResult{}
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		done <- probeResult{err: fmt.Errorf("connect error: %v", errs[0])}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return fmt.Errorf("timed out after connecting")
		}
		return fmt.Errorf("timed out while waiting for initial connection")
	case res := <-done:
		return res.err
	}
}
