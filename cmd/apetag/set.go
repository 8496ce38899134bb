package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/apetag"
	"github.com/simonhull/apetag/internal/ape"
)

type setFlags struct {
	artist, title, album, comment, genre string
	track, year                          int
	items                                []string
	deletes                              []string
	backup                               string
	validate                             bool
	preserveModTime                      bool
}

func newSetCmd(a *app) *cobra.Command {
	var sf setFlags

	cmd := &cobra.Command{
		Use:   "set FILE...",
		Short: "Update tags in place",
		Long: `set changes the given fields of every file and rewrites its tag at the
end of the file. Files without a tag get a new one appended. An empty string
or a zero number removes a field.`,
		Example: `  apetag set --title "Song" --track 3 song.mpc
  apetag set --item "Custom=value" --delete Obsolete *.mpc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(sf.items)
			if err != nil {
				return err
			}

			suffix := a.cfg.BackupSuffix
			if cmd.Flags().Changed("backup") {
				suffix = sf.backup
			}
			saveOpts := []apetag.SaveOption{apetag.WithBackup(suffix)}
			if sf.validate {
				saveOpts = append(saveOpts, apetag.WithValidation())
			}
			if sf.preserveModTime {
				saveOpts = append(saveOpts, apetag.WithPreserveModTime())
			}

			for _, path := range args {
				file, err := apetag.Open(path, a.openOptions()...)
				if err != nil {
					return err
				}
				sf.apply(cmd, &file.Tags, items)
				if err := file.Save(saveOpts...); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				a.log.Info("updated tag", zap.String("path", path), zap.Int64("size", file.Size))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&sf.artist, "artist", "", "Artist")
	f.StringVar(&sf.title, "title", "", "Title")
	f.StringVar(&sf.album, "album", "", "Album")
	f.StringVar(&sf.comment, "comment", "", "Comment")
	f.StringVar(&sf.genre, "genre", "", "Genre")
	f.IntVar(&sf.track, "track", 0, "Track number")
	f.IntVar(&sf.year, "year", 0, "Year")
	f.StringArrayVar(&sf.items, "item", nil, "Set a custom item as KEY=VALUE (repeatable)")
	f.StringArrayVar(&sf.deletes, "delete", nil, "Remove custom items with KEY (repeatable)")
	f.StringVar(&sf.backup, "backup", "", "Keep a copy of each file with this suffix")
	f.BoolVar(&sf.validate, "validate", false, "Re-read each file after writing and compare")
	f.BoolVar(&sf.preserveModTime, "preserve-mtime", false, "Keep the original modification time")

	return cmd
}

// apply copies the flags that were given on the command line into tags.
func (sf *setFlags) apply(cmd *cobra.Command, tags *apetag.Tags, items []apetag.Item) {
	changed := cmd.Flags().Changed
	strs := []struct {
		flag  string
		field apetag.Field
		value string
	}{
		{"artist", apetag.FieldArtist, sf.artist},
		{"title", apetag.FieldTitle, sf.title},
		{"album", apetag.FieldAlbum, sf.album},
		{"comment", apetag.FieldComment, sf.comment},
		{"genre", apetag.FieldGenre, sf.genre},
	}
	for _, s := range strs {
		if changed(s.flag) {
			tags.AssociateString(s.field, s.value)
		}
	}
	if changed("track") {
		tags.AssociateInt(apetag.FieldTrackNumber, sf.track)
	}
	if changed("year") {
		tags.AssociateInt(apetag.FieldYear, sf.year)
	}

	for _, key := range sf.deletes {
		tags.Delete(key)
	}
	for _, it := range items {
		tags.Set(it.Key, it.Value)
	}
}

func parseItems(raw []string) ([]apetag.Item, error) {
	items := make([]apetag.Item, 0, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid item %q: want KEY=VALUE", kv)
		}
		if ape.IsKnownKey(key) {
			return nil, fmt.Errorf("invalid item %q: %s is a standard field, use its flag", kv, key)
		}
		if strings.IndexByte(key, 0) >= 0 {
			return nil, fmt.Errorf("invalid item key %q: contains NUL", key)
		}
		items = append(items, apetag.Item{Key: key, Value: []byte(value)})
	}
	return items, nil
}
