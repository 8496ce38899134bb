package apetag

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/simonhull/apetag/internal/ape"
)

// Save writes the tag back to the original file.
//
// The tag is replaced in place at the end of the file, or appended if the
// file had none. A tag that is followed by other data is rejected with
// *UnsupportedLocationError before the file is touched.
//
// Options can be provided to customize save behavior:
//
//	err := file.Save(
//	    apetag.WithBackup(".bak"),
//	    apetag.WithValidation(),
//	)
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the file with its tag to a new location.
//
// The original content is copied to outputPath first and the tag is then
// rewritten there. Saving to f.Path is the same as Save.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error { //nolint:gocyclo // File operations require sequential steps
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	o := f.opts
	if o == nil {
		o = defaultOptions()
	}
	fs := o.fs

	// Get original file's mod time if we need to preserve it
	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := fs.Stat(f.Path); err == nil {
			origInfo = info
		}
	}

	inPlace := outputPath == f.Path

	// Handle backup option (copy the file about to be modified)
	if options.backupSuffix != "" {
		if _, err := fs.Stat(outputPath); err == nil {
			if err := copyFile(fs, outputPath, outputPath+options.backupSuffix); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if !inPlace {
		if err := copyFile(fs, f.Path, outputPath); err != nil {
			return fmt.Errorf("copy to output: %w", err)
		}
	}

	out, err := fs.OpenFile(outputPath, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open for writing: %w", err)
	}
	defer out.Close() //nolint:errcheck // Closed explicitly on success

	codec := ape.NewCodec(o.codecOptions(outputPath))
	if err := codec.Write(out, &f.Tags); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if inPlace {
		loc, err := codec.Locate(out)
		if err != nil {
			return fmt.Errorf("locate written tag: %w", err)
		}
		f.Location = &loc
		f.Size = loc.End()
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	if options.preserveModTime && origInfo != nil {
		_ = fs.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-opens the file and compares the written tag.
func (f *File) validateWrittenFile(path string) error {
	var opts []Option
	if f.opts != nil {
		opts = append(opts, WithFs(f.opts.fs), WithLogger(f.opts.logger))
	}

	written, err := Open(path, opts...)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	if !written.HasTag() {
		return errors.New("no tag after save")
	}

	for field := FieldArtist; field <= FieldYear; field++ {
		if field.IsInt() {
			got, _ := written.Tags.GetInt(field)
			want, _ := f.Tags.GetInt(field)
			if got != want {
				return fmt.Errorf("%s mismatch: got %d, want %d", field, got, want)
			}
			continue
		}
		got, _ := written.Tags.GetString(field)
		want, _ := f.Tags.GetString(field)
		if got != want {
			return fmt.Errorf("%s mismatch: got %q, want %q", field, got, want)
		}
	}

	if !f.Tags.ItemsSet() {
		return nil
	}

	gotItems, wantItems := written.Tags.Items(), f.Tags.Items()
	if len(gotItems) != len(wantItems) {
		return fmt.Errorf("item count mismatch: got %d, want %d", len(gotItems), len(wantItems))
	}
	for i := range wantItems {
		if gotItems[i].Key != wantItems[i].Key || !bytes.Equal(gotItems[i].Value, wantItems[i].Value) {
			return fmt.Errorf("item %d mismatch: got %q, want %q", i, gotItems[i].Key, wantItems[i].Key)
		}
	}

	return nil
}

// copyFile streams src to dst on fs, replacing dst.
func copyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close() //nolint:errcheck // Already failing
		return err
	}
	return out.Close()
}
