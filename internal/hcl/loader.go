package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/lazyext/internal/config"
	"github.com/vk/lazyext/internal/ctxlog"
	"github.com/vk/lazyext/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl manifest under the given paths into the
// format-agnostic model. A virtual attribute declared twice is an error
// naming both declaration sites.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.NewModel()
	parser := hclparse.NewParser()

	// attr -> file that first declared it, for duplicate diagnostics.
	declaredIn := make(map[string]string)

	for _, root := range paths {
		filePaths, err := fsutil.FindFilesByExtension(root, ".hcl")
		if err != nil {
			logger.Error("Failed to walk manifest path", "path", root, "error", err)
			return nil, err
		}

		if len(filePaths) == 0 {
			logger.Warn("No .hcl manifest files found in path", "path", root)
			continue
		}

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
			}

			var manifest ManifestFile
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
			}

			for _, block := range manifest.Extensions {
				if prev, dup := declaredIn[block.Attr]; dup {
					return nil, fmt.Errorf("extension attribute %q declared in both %s and %s",
						block.Attr, prev, filePath)
				}

				def, err := newDefinition(block)
				if err != nil {
					return nil, fmt.Errorf("invalid extension block %q in %s: %w",
						block.Attr, filePath, err)
				}

				declaredIn[block.Attr] = filePath
				model.Extensions[block.Attr] = def
			}
			logger.Debug("Successfully loaded definitions from manifest file.", "file", filePath)
		}
	}

	logger.Info("Extension manifests loaded.", "extensions_loaded", len(model.Extensions))
	return model, nil
}

// newDefinition translates a decoded block into the format-agnostic model,
// evaluating the optional settings expression.
func newDefinition(block *ExtensionBlock) (*config.ExtensionDefinition, error) {
	if block.Package == "" {
		return nil, fmt.Errorf("package must not be empty")
	}

	def := &config.ExtensionDefinition{
		Attr:        block.Attr,
		Package:     block.Package,
		Description: block.Description,
	}

	if block.Settings != nil {
		val, diags := block.Settings.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate settings: %w", diags)
		}
		settings, err := settingsToGo(val)
		if err != nil {
			return nil, err
		}
		def.Settings = settings
	}

	return def, nil
}
