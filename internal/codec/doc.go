// Package codec bridges CFG++ value trees to and from JSON, YAML, TOML
// and a lossless msgpack wire form.
package codec
