// Package apetag reads and rewrites APEv2 tags embedded in media files.
//
// An APE tag is a block of key/value items bounded by 32-byte header and
// footer records. It is usually appended to the end of an audio file
// (Musepack, WavPack, Monkey's Audio, MP3), and less commonly placed at the
// start. apetag finds the tag through either record, decodes its items,
// and maps the well-known keys onto a Tags record.
//
// # Quick Start
//
// Reading the tag of a file:
//
//	file, err := apetag.Open("song.mpc")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s\n", file.Tags.Artist, file.Tags.Title)
//
// Updating it in place:
//
//	file.Tags.Title = "New Title"
//	file.Tags.Set("Custom", []byte("value"))
//	if err := file.Save(apetag.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// # Fields
//
// The keys Artist, Title, Album, Comment and Genre map to string fields.
// Track and Date map to TrackNumber and Year, parsed from their leading
// digits. Every other item is kept as a passthrough item in on-disk order
// and is written back unchanged.
//
// # Error Handling
//
// A file without a tag is not an error for Open: File.HasTag reports
// false and Tags is empty. Read returns ErrNotFound instead.
//
// Items that cannot be decoded end the item list early. The items before
// them are returned and a Warning is recorded, unless WithStrictParsing is
// used.
//
// Writing replaces the tag at the end of the file in place. A tag that is
// followed by other data is rejected with ErrUnsupportedLocation before the
// file is modified. Any later failure returns a *WriteError and may leave
// the file truncated; use WithBackup when that matters.
//
// # Concurrency
//
// Reads and writes on different files may run concurrently. Calls on the
// same file must be serialized by the caller. OpenMany reads many files in
// parallel.
package apetag
