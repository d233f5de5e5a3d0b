// Package lazyext implements lazy namespace extension resolution: a root
// Namespace exposes a fixed set of eager attributes plus a set of virtual
// attributes, each mapped to an optional extension package that is loaded
// only when the attribute is first resolved.
//
// A Namespace never loads anything at construction time. Resolve is the
// single operation: an eager attribute resolves normally, a virtual
// attribute triggers an on-demand load through a registry.Registry, and any
// other name fails with *AttributeError without consulting the loader at
// all. A virtual attribute whose mapped package cannot be loaded fails with
// *MissingExtensionError, which names both the attribute and the package and
// preserves the loader's failure as its cause.
//
// Idempotence is delegated to the loader: the registry initializes each
// package at most once and hands back the identical value on every later
// resolution, so repeated access to a virtual attribute never re-runs the
// extension's initialization.
//
// Tooling that wants to know which attributes exist without paying for them
// can use Attributes and Extensions, which only report declared names.
package lazyext
