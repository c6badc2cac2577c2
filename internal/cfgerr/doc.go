// Package cfgerr defines the typed error kinds surfaced by parsing,
// value access, and schema loading. All failures are returned as values;
// nothing panics across package boundaries.
package cfgerr
