package config

// Model is the unified, format-agnostic representation of the extension
// configuration loaded from manifest files.
type Model struct {
	Extensions map[string]*ExtensionDefinition
}

// ExtensionDefinition is the format-agnostic representation of a single
// `extension` block: one virtual attribute mapped to one extension package.
type ExtensionDefinition struct {
	Attr        string
	Package     string
	Description string
	Settings    map[string]any
}

// NewModel creates an empty Model.
func NewModel() *Model {
	return &Model{Extensions: make(map[string]*ExtensionDefinition)}
}
