// Package value defines the CFG++ value tree, the data model shared by the
// parser, the schema validator, and the serialization bridges.
package value
