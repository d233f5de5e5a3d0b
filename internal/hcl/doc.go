// Package hcl is the HCL implementation of config.Loader. It discovers
// .hcl manifest files, parses their `extension` blocks, and converts any
// `settings` expression into plain Go values for the model.
package hcl
