// Package supertool is the canonical optional extension. Importing it
// registers the 'supertool' package on the default registry, so a namespace
// mapping an attribute to that ID can resolve it on first access.
package supertool

import (
	"context"
	"fmt"

	"github.com/vk/lazyext/registry"
)

// PackageID is the identifier this extension registers under.
const PackageID = "supertool"

const defaultGreeting = "SuperTool activated!"

func init() {
	registry.Register(PackageID, func(ctx context.Context) (any, error) {
		return NewNamespace(), nil
	})
}

// Namespace is the value a virtual attribute mapped to this package
// resolves to.
type Namespace struct {
	greeting string
}

// NewNamespace creates the extension namespace with its default greeting.
func NewNamespace() *Namespace {
	return &Namespace{greeting: defaultGreeting}
}

// Configure applies manifest settings. The only recognized setting is
// 'greeting', the string SuperTool reports when run.
func (n *Namespace) Configure(settings map[string]any) error {
	raw, ok := settings["greeting"]
	if !ok {
		return nil
	}
	greeting, ok := raw.(string)
	if !ok {
		return fmt.Errorf("setting 'greeting' must be a string, got %T", raw)
	}
	n.greeting = greeting
	return nil
}

// SuperTool is the flagship tool of the extension.
type SuperTool struct {
	greeting string
}

// NewSuperTool constructs a tool bound to the namespace's greeting.
func (n *Namespace) NewSuperTool() *SuperTool {
	return &SuperTool{greeting: n.greeting}
}

// Run performs the tool's work and reports the outcome.
func (t *SuperTool) Run() string {
	return t.greeting
}
