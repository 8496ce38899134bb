package apetag

import (
	"github.com/simonhull/apetag/internal/types"
)

// Tags is an alias to types.Tags.
// Re-exporting from internal/types to maintain public API.
type Tags = types.Tags

// Item is an alias to types.Item.
type Item = types.Item

// Field is an alias to types.Field.
type Field = types.Field

// Re-export all field constants.
const (
	FieldArtist      = types.FieldArtist
	FieldTitle       = types.FieldTitle
	FieldAlbum       = types.FieldAlbum
	FieldComment     = types.FieldComment
	FieldGenre       = types.FieldGenre
	FieldTrackNumber = types.FieldTrackNumber
	FieldYear        = types.FieldYear
)
