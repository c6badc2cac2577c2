// Package schema models CFG++ schemas and validates value trees against
// them. Validation is fail-slow: every mismatch in the tree is collected
// into one report instead of stopping at the first.
package schema
