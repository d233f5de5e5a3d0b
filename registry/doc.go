// Package registry is the process's extension loading facility.
//
// Go has no run-time module importer, so "loading an extension package" is
// made explicit here: an extension package calls Register from its init
// function, mapping a stable package ID to a factory that builds the
// extension's namespace value. Importing the extension package (usually with
// a blank import) is therefore what makes it loadable, in the same way
// database/sql drivers announce themselves.
//
// Load memoizes by package ID: the factory for a given ID runs at most once
// per registry, even when several goroutines race on the first access, and
// every successful Load returns the identical value. A factory failure is
// not cached, so a later Load retries.
package registry
