// Package parser builds CFG++ value trees by recursive descent, resolving
// environment variable references and include directives inline. Parsing is
// fail-fast: the first grammar violation aborts with a position-tracked
// syntax error and no partial tree is returned.
package parser
