// Package httpclient is an optional extension that builds tuned HTTP
// clients. Importing it registers the 'httpclient' package on the default
// registry.
package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vk/lazyext/registry"
)

// PackageID is the identifier this extension registers under.
const PackageID = "httpclient"

func init() {
	registry.Register(PackageID, func(ctx context.Context) (any, error) {
		return NewNamespace(), nil
	})
}

// Namespace builds HTTP clients with pooled transports.
type Namespace struct{}

// NewNamespace creates the extension namespace.
func NewNamespace() *Namespace {
	return &Namespace{}
}

// NewClient returns a live *http.Client with the given request timeout and
// connection pooling suitable for sharing across callers.
func (n *Namespace) NewClient(timeout string) (*http.Client, error) {
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, err
	}

	client := &http.Client{
		Timeout: d,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	return client, nil
}

// Release gracefully closes a client's idle connections.
func (n *Namespace) Release(client *http.Client) {
	client.CloseIdleConnections()
}
