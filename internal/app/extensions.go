package app

import (
	"github.com/vk/lazyext/extensions/envinfo"
	"github.com/vk/lazyext/extensions/httpclient"
	"github.com/vk/lazyext/extensions/socketio"
	"github.com/vk/lazyext/extensions/supertool"
)

// builtinExtensions is the definitive attribute map for the extension
// packages compiled into the lazyext binary. Manifest entries overlay it.
var builtinExtensions = map[string]string{
	"ext":  supertool.PackageID,
	"env":  envinfo.PackageID,
	"http": httpclient.PackageID,
	"sio":  socketio.PackageID,
}
