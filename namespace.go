package lazyext

import (
	"context"
	"sort"

	"github.com/vk/lazyext/internal/ctxlog"
	"github.com/vk/lazyext/registry"
)

// traceMessage is the diagnostic line emitted on every virtual attribute
// access, whether or not the package behind it is already loaded.
const traceMessage = "Lazily loading extension package for attribute."

// Config holds everything needed to construct a Namespace.
type Config struct {
	// Name is the namespace's own display name, used in traces and errors.
	Name string

	// Loader resolves package IDs to loaded extension values. When nil, the
	// process-wide registry.Default() is used.
	Loader *registry.Registry

	// Attributes are the namespace's ordinary, eagerly defined members.
	Attributes map[string]any

	// Extensions maps virtual attribute names to the ID of the extension
	// package loaded on first access of that name.
	Extensions map[string]string
}

// Namespace is the root object callers read attributes from. Both maps are
// copied at construction and never mutated afterwards, so a Namespace is
// safe for concurrent use without locking; at-most-once initialization of an
// extension under racing first accesses is the loader's responsibility.
type Namespace struct {
	name   string
	loader *registry.Registry
	attrs  map[string]any
	ext    map[string]string
}

// New constructs a Namespace. Nothing is loaded here: constructing a
// namespace whose extensions are never accessed costs nothing beyond the two
// map copies.
func New(cfg Config) *Namespace {
	ns := &Namespace{
		name:   cfg.Name,
		loader: cfg.Loader,
		attrs:  make(map[string]any, len(cfg.Attributes)),
		ext:    make(map[string]string, len(cfg.Extensions)),
	}
	if ns.loader == nil {
		ns.loader = registry.Default()
	}
	for name, val := range cfg.Attributes {
		ns.attrs[name] = val
	}
	for name, id := range cfg.Extensions {
		ns.ext[name] = id
	}
	return ns
}

// Name returns the namespace's display name.
func (ns *Namespace) Name() string {
	return ns.name
}

// Resolve looks up an attribute. Eager attributes resolve normally. A name
// in the extension map resolves to the mapped package's namespace value,
// loading it on first access; a name in neither set fails with
// *AttributeError, and a mapped package that cannot be loaded fails with
// *MissingExtensionError carrying the load failure as its cause.
func (ns *Namespace) Resolve(ctx context.Context, name string) (any, error) {
	if val, ok := ns.attrs[name]; ok {
		return val, nil
	}

	pkg, ok := ns.ext[name]
	if !ok {
		return nil, &AttributeError{Namespace: ns.name, Attr: name}
	}

	// The trace fires on every access, before the loader's cache is
	// consulted; only the initialization behind it is once-only.
	ctxlog.FromContext(ctx).Info(traceMessage,
		"namespace", ns.name, "attr", name, "package", pkg)

	val, err := ns.loader.Load(ctx, pkg)
	if err != nil {
		return nil, &MissingExtensionError{
			Namespace: ns.name,
			Attr:      name,
			Package:   pkg,
			Err:       err,
		}
	}
	return val, nil
}

// Extension returns the package ID a virtual attribute maps to, and whether
// the attribute is virtual at all. Introspection only; it never triggers a
// load.
func (ns *Namespace) Extension(name string) (string, bool) {
	pkg, ok := ns.ext[name]
	return pkg, ok
}

// Extensions returns the sorted virtual attribute names. Introspection only;
// it never triggers a load.
func (ns *Namespace) Extensions() []string {
	names := make([]string, 0, len(ns.ext))
	for name := range ns.ext {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Attributes returns the sorted eager attribute names.
func (ns *Namespace) Attributes() []string {
	names := make([]string, 0, len(ns.attrs))
	for name := range ns.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
