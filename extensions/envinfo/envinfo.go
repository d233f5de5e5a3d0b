// Package envinfo is an optional extension exposing a view of the process
// environment. Importing it registers the 'envinfo' package on the default
// registry.
package envinfo

import (
	"context"
	"os"
	"strings"

	"github.com/vk/lazyext/registry"
)

// PackageID is the identifier this extension registers under.
const PackageID = "envinfo"

func init() {
	registry.Register(PackageID, func(ctx context.Context) (any, error) {
		return NewNamespace(), nil
	})
}

// Namespace exposes the process environment.
type Namespace struct{}

// NewNamespace creates the extension namespace.
func NewNamespace() *Namespace {
	return &Namespace{}
}

// All returns a snapshot of every environment variable.
func (n *Namespace) All() map[string]string {
	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envMap[pair[0]] = pair[1]
		}
	}
	return envMap
}

// Lookup retrieves a single environment variable, reporting whether it is set.
func (n *Namespace) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}
