// Package app wires the demo application together: an isolated logger, the
// manifest-backed extension map merged over the built-in defaults, and the
// root namespace over the process-wide extension registry. Its Run method
// replays the canonical flow: check the loaded set, resolve an attribute,
// check again, then exercise the resolved extension.
package app
