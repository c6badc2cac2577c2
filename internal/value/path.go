package value

import (
	"strconv"
	"strings"

	"cfgpp/internal/cfgerr"
)

// GetPath navigates a dotted path such as "database.host" or
// "servers[0].name". Each dot-separated segment may carry a trailing
// [index] suffix for array indexing. Traversal short-circuits to
// "not found" on the first missing segment or index.
func (v *Value) GetPath(path string) (*Value, bool) {
	cur, err := v.ResolvePath(path)
	if err != nil {
		return nil, false
	}
	return cur, true
}

// ResolvePath is GetPath with the reason for the miss: a missing key yields
// *cfgerr.KeyNotFound, an out-of-range index *cfgerr.IndexOutOfBounds, and a
// malformed index literal *cfgerr.ParseError.
func (v *Value) ResolvePath(path string) (*Value, error) {
	cur := v
	for _, part := range strings.Split(path, ".") {
		if bracket := strings.IndexByte(part, '['); bracket >= 0 && strings.HasSuffix(part, "]") {
			field := part[:bracket]
			idx, err := strconv.Atoi(part[bracket+1 : len(part)-1])
			if err != nil {
				return nil, &cfgerr.ParseError{Msg: "invalid array index in path segment '" + part + "'"}
			}
			if field != "" {
				next, ok := cur.Get(field)
				if !ok {
					return nil, &cfgerr.KeyNotFound{Key: field}
				}
				cur = next
			}
			next, ok := cur.GetIndex(idx)
			if !ok {
				return nil, &cfgerr.IndexOutOfBounds{Index: idx}
			}
			cur = next
			continue
		}

		next, ok := cur.Get(part)
		if !ok {
			return nil, &cfgerr.KeyNotFound{Key: part}
		}
		cur = next
	}
	return cur, nil
}
