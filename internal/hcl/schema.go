package hcl

import "github.com/hashicorp/hcl/v2"

// ExtensionBlock represents a single `extension` block from a manifest file.
// The label is the virtual attribute name; `package` is the ID of the
// extension package that attribute resolves to.
type ExtensionBlock struct {
	Attr        string         `hcl:"attr,label"`
	Package     string         `hcl:"package"`
	Description string         `hcl:"description,optional"`
	Settings    hcl.Expression `hcl:"settings,optional"`
}

// ManifestFile represents the top-level structure of a manifest file,
// containing all declared extensions.
type ManifestFile struct {
	Extensions []*ExtensionBlock `hcl:"extension,block"`
}
