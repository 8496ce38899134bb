package types

import (
	"bytes"
	"iter"
	"slices"
)

// Field identifies one of the structured metadata fields an APE tag maps to.
type Field int

const (
	// FieldArtist is the track artist.
	FieldArtist Field = iota
	// FieldTitle is the track title.
	FieldTitle
	// FieldAlbum is the album name.
	FieldAlbum
	// FieldComment is a free-form comment.
	FieldComment
	// FieldGenre is the genre name.
	FieldGenre
	// FieldTrackNumber is the track number.
	FieldTrackNumber
	// FieldYear is the release year.
	FieldYear
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldArtist:
		return "Artist"
	case FieldTitle:
		return "Title"
	case FieldAlbum:
		return "Album"
	case FieldComment:
		return "Comment"
	case FieldGenre:
		return "Genre"
	case FieldTrackNumber:
		return "TrackNumber"
	case FieldYear:
		return "Year"
	default:
		return "Unknown"
	}
}

// IsInt reports whether the field holds an integer value.
func (f Field) IsInt() bool {
	return f == FieldTrackNumber || f == FieldYear
}

// Item is a single key/value pair stored in a tag.
//
// Keys are arbitrary bytes up to a NUL terminator. Values are raw bytes and
// are not necessarily text.
type Item struct {
	Key   string
	Value []byte
}

// Clone returns a copy of the item that shares no memory with the original.
func (i Item) Clone() Item {
	return Item{Key: i.Key, Value: slices.Clone(i.Value)}
}

// Tags is the structured metadata record populated from and written to an
// APE tag.
//
// The standard fields are exposed directly. Items whose keys are not mapped
// to a standard field are kept in their on-disk order and can be accessed
// with All, Get, Set, Add and Delete.
type Tags struct {
	Artist      string
	Title       string
	Album       string
	Comment     string
	Genre       string
	TrackNumber int
	Year        int

	items    []Item
	itemsSet bool
}

// AssociateString sets a string field. Integer fields are ignored.
func (t *Tags) AssociateString(field Field, value string) {
	switch field {
	case FieldArtist:
		t.Artist = value
	case FieldTitle:
		t.Title = value
	case FieldAlbum:
		t.Album = value
	case FieldComment:
		t.Comment = value
	case FieldGenre:
		t.Genre = value
	}
}

// AssociateInt sets an integer field. String fields are ignored.
func (t *Tags) AssociateInt(field Field, value int) {
	switch field {
	case FieldTrackNumber:
		t.TrackNumber = value
	case FieldYear:
		t.Year = value
	}
}

// GetString returns a string field and whether it is present.
// An empty string counts as absent.
func (t *Tags) GetString(field Field) (string, bool) {
	var v string
	switch field {
	case FieldArtist:
		v = t.Artist
	case FieldTitle:
		v = t.Title
	case FieldAlbum:
		v = t.Album
	case FieldComment:
		v = t.Comment
	case FieldGenre:
		v = t.Genre
	}
	return v, v != ""
}

// GetInt returns an integer field and whether it is present.
// Zero counts as absent.
func (t *Tags) GetInt(field Field) (int, bool) {
	var v int
	switch field {
	case FieldTrackNumber:
		v = t.TrackNumber
	case FieldYear:
		v = t.Year
	}
	return v, v != 0
}

// All returns an iterator over the passthrough items in order.
//
// Duplicate keys are yielded once per occurrence. The yielded values must
// not be modified.
func (t *Tags) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for _, it := range t.items {
			if !yield(it.Key, it.Value) {
				return
			}
		}
	}
}

// Items returns a copy of the passthrough items in order.
func (t *Tags) Items() []Item {
	if len(t.items) == 0 {
		return nil
	}
	out := make([]Item, len(t.items))
	for i, it := range t.items {
		out[i] = it.Clone()
	}
	return out
}

// Len returns the number of passthrough items.
func (t *Tags) Len() int {
	return len(t.items)
}

// Get returns the value of the last passthrough item with the given key.
func (t *Tags) Get(key string) ([]byte, bool) {
	for i := len(t.items) - 1; i >= 0; i-- {
		if t.items[i].Key == key {
			return slices.Clone(t.items[i].Value), true
		}
	}
	return nil, false
}

// Add appends a passthrough item, keeping any existing items with the
// same key.
func (t *Tags) Add(key string, value []byte) {
	t.items = append(t.items, Item{Key: key, Value: slices.Clone(value)})
	t.itemsSet = true
}

// Set replaces the value of the first passthrough item with the given key
// and drops any later duplicates. If the key is absent the item is appended.
func (t *Tags) Set(key string, value []byte) {
	t.itemsSet = true
	idx := slices.IndexFunc(t.items, func(it Item) bool { return it.Key == key })
	if idx < 0 {
		t.items = append(t.items, Item{Key: key, Value: slices.Clone(value)})
		return
	}
	t.items[idx].Value = slices.Clone(value)
	rest := slices.DeleteFunc(t.items[idx+1:], func(it Item) bool { return it.Key == key })
	t.items = t.items[:idx+1+len(rest)]
}

// Delete removes every passthrough item with the given key.
func (t *Tags) Delete(key string) {
	t.itemsSet = true
	t.items = slices.DeleteFunc(t.items, func(it Item) bool { return it.Key == key })
}

// ClearItems removes every passthrough item.
func (t *Tags) ClearItems() {
	t.items = nil
	t.itemsSet = true
}

// ItemsSet reports whether the passthrough items were loaded from a tag or
// edited. When false, writers keep the items already present in the file.
func (t *Tags) ItemsSet() bool {
	return t.itemsSet
}

// Clone creates a deep copy of the Tags.
func (t *Tags) Clone() *Tags {
	if t == nil {
		return nil
	}
	clone := *t
	clone.items = t.Items()
	return &clone
}

// Equal checks if two Tags hold the same fields and passthrough items.
func (t *Tags) Equal(other *Tags) bool {
	if t == nil && other == nil {
		return true
	}
	if t == nil || other == nil {
		return false
	}

	if t.Artist != other.Artist ||
		t.Title != other.Title ||
		t.Album != other.Album ||
		t.Comment != other.Comment ||
		t.Genre != other.Genre ||
		t.TrackNumber != other.TrackNumber ||
		t.Year != other.Year {
		return false
	}

	return slices.EqualFunc(t.items, other.items, func(a, b Item) bool {
		return a.Key == b.Key && bytes.Equal(a.Value, b.Value)
	})
}
