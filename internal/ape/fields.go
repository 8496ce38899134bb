package ape

import (
	"strconv"

	"github.com/simonhull/apetag/internal/types"
)

// knownKeys maps item keys to standard fields, in the order they are written.
var knownKeys = [...]struct {
	key   string
	field types.Field
}{
	{"Artist", types.FieldArtist},
	{"Title", types.FieldTitle},
	{"Album", types.FieldAlbum},
	{"Comment", types.FieldComment},
	{"Genre", types.FieldGenre},
	{"Track", types.FieldTrackNumber},
	{"Date", types.FieldYear},
}

// IsKnownKey reports whether key maps to a standard field. Matching is
// exact and case-sensitive.
func IsKnownKey(key string) bool {
	_, ok := fieldFor(key)
	return ok
}

func fieldFor(key string) (types.Field, bool) {
	for _, k := range knownKeys {
		if k.key == key {
			return k.field, true
		}
	}
	return 0, false
}

// Load maps decoded items into tags.
//
// Items with a known key set the matching field; a later item with the same
// key wins. Every other item is appended to the passthrough items in order.
// Values are copied byte for byte; integer fields use atoi.
func Load(items []types.Item, tags *types.Tags) {
	for _, it := range items {
		field, ok := fieldFor(it.Key)
		if !ok {
			tags.Add(it.Key, it.Value)
			continue
		}
		if field.IsInt() {
			tags.AssociateInt(field, atoi(it.Value))
		} else {
			tags.AssociateString(field, string(it.Value))
		}
	}
}

// Store returns the items for the standard fields of tags, in the fixed
// key order. Empty strings and zero integers are omitted.
func Store(tags *types.Tags) []types.Item {
	var items []types.Item
	for _, k := range knownKeys {
		var value string
		if k.field.IsInt() {
			n, ok := tags.GetInt(k.field)
			if !ok {
				continue
			}
			value = strconv.Itoa(n)
		} else {
			s, ok := tags.GetString(k.field)
			if !ok {
				continue
			}
			value = s
		}
		items = append(items, types.Item{Key: k.key, Value: []byte(value)})
	}
	return items
}

// atoi parses the leading decimal integer of b, skipping leading spaces
// and accepting a sign. Anything unparseable yields 0.
func atoi(b []byte) int {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}

	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	const limit = 1<<31 - 1
	n := 0
	for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
		n = n*10 + int(b[i]-'0')
		if n > limit {
			n = limit
		}
	}

	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}
