package lazyext

import "fmt"

// AttributeError reports access to a name that is neither an eager attribute
// nor a virtual one. It is deliberately distinct from MissingExtensionError:
// an unknown name was never a deferred one, and no load is ever attempted
// for it.
type AttributeError struct {
	Namespace string
	Attr      string
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	return fmt.Sprintf("namespace '%s' has no attribute '%s'", e.Namespace, e.Attr)
}

// MissingExtensionError reports a virtual attribute whose mapped extension
// package could not be loaded.
type MissingExtensionError struct {
	Namespace string
	Attr      string
	Package   string
	Err       error
}

// Error implements the error interface.
func (e *MissingExtensionError) Error() string {
	return fmt.Sprintf("missing extension: to use '%s.%s', please install package '%s'",
		e.Namespace, e.Attr, e.Package)
}

// Unwrap returns the underlying load failure, so errors.Is against loader
// sentinels such as registry.ErrNotRegistered keeps working.
func (e *MissingExtensionError) Unwrap() error {
	return e.Err
}
