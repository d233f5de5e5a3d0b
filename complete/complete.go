// Package complete bundles the core namespace with every extension package.
//
// Importing this package registers all bundled extensions, guaranteeing that
// every attribute in the default extension map resolves successfully. It is
// a convenience for programs that want the complete framework from a single
// import:
//
//	import _ "github.com/vk/lazyext/complete"
//
// instead of blank-importing each extension individually. The resolver does
// not depend on this guarantee: without these imports, resolving a mapped
// attribute fails with *lazyext.MissingExtensionError.
package complete

import (
	_ "github.com/vk/lazyext/extensions/envinfo"
	_ "github.com/vk/lazyext/extensions/httpclient"
	_ "github.com/vk/lazyext/extensions/socketio"
	_ "github.com/vk/lazyext/extensions/supertool"
)
