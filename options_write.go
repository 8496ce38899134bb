package apetag

// SaveOption configures behavior when saving files.
//
//	err := file.Save(
//	    apetag.WithBackup(".bak"),
//	    apetag.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for the backup copy (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup copies the file before its tag is rewritten.
//
// The copy is named after the file with suffix appended, so
// WithBackup(".bak") preserves "song.mpc" as "song.mpc.bak". An existing
// backup is overwritten. An empty suffix disables the backup.
//
// Tags are rewritten in place, so the backup is the only way to recover
// the original if the write fails part way.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing and compares the tag
// with the one that was saved.
//
// The standard fields are always compared. Passthrough items are compared
// when they were loaded or edited.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime restores the file's modification time after saving.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
