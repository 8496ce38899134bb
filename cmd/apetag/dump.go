package main

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/simonhull/apetag"
)

type dumpItem struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Binary bool   `json:"binary,omitempty"`
}

type dumpLocation struct {
	Start   int64  `json:"start"`
	Span    int64  `json:"span"`
	Version uint32 `json:"version"`
	Items   uint32 `json:"items"`
	Flags   string `json:"flags"`
	AtStart bool   `json:"at_start,omitempty"`
}

type dumpFile struct {
	Path        string        `json:"path"`
	Size        int64         `json:"size"`
	Location    *dumpLocation `json:"location,omitempty"`
	Artist      string        `json:"artist,omitempty"`
	Title       string        `json:"title,omitempty"`
	Album       string        `json:"album,omitempty"`
	Comment     string        `json:"comment,omitempty"`
	Genre       string        `json:"genre,omitempty"`
	TrackNumber int           `json:"track,omitempty"`
	Year        int           `json:"year,omitempty"`
	Items       []dumpItem    `json:"items,omitempty"`
	Warnings    []string      `json:"warnings,omitempty"`
}

func newDumpFile(f *apetag.File) dumpFile {
	d := dumpFile{
		Path:        f.Path,
		Size:        f.Size,
		Artist:      f.Tags.Artist,
		Title:       f.Tags.Title,
		Album:       f.Tags.Album,
		Comment:     f.Tags.Comment,
		Genre:       f.Tags.Genre,
		TrackNumber: f.Tags.TrackNumber,
		Year:        f.Tags.Year,
	}
	if f.Location != nil {
		d.Location = &dumpLocation{
			Start:   f.Location.Start,
			Span:    f.Location.Span,
			Version: f.Location.Primary.Version,
			Items:   f.Location.Primary.ItemCount,
			Flags:   f.Location.Primary.Flags.String(),
			AtStart: f.Location.AtStart,
		}
	}
	for key, value := range f.Tags.All() {
		it := dumpItem{Key: key, Value: string(value)}
		if !utf8.Valid(value) {
			it.Value = fmt.Sprintf("%x", value)
			it.Binary = true
		}
		d.Items = append(d.Items, it)
	}
	for _, w := range f.Warnings {
		d.Warnings = append(d.Warnings, w.String())
	}
	return d
}

func newDumpCmd(a *app) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "dump FILE...",
		Short: "Print the tags of one or more files",
		Long: `dump reads the APE tag of every file in parallel and prints the
standard fields, the remaining items and any decoding warnings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := apetag.OpenMany(cmd.Context(), args, a.openOptions()...)
			if err != nil {
				return err
			}

			dumps := make([]dumpFile, len(files))
			for i, f := range files {
				dumps[i] = newDumpFile(f)
			}

			if a.cfg.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), dumps, color)
			}
			for _, d := range dumps {
				writeText(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&color, "color", false, "Colorize JSON output")
	_ = a.v.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func writeJSON(w io.Writer, dumps []dumpFile, color bool) error {
	b, err := json.Marshal(dumps)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	b = pretty.Pretty(b)
	if color {
		b = pretty.Color(b, nil)
	}
	_, err = w.Write(b)
	return err
}

func writeText(w io.Writer, d dumpFile) {
	fmt.Fprintf(w, "%s (%s)\n", d.Path, humanize.IBytes(uint64(d.Size)))
	if d.Location == nil {
		fmt.Fprintln(w, "  no tag")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  tag:     APE v%d at %s, %s, flags %s\n",
		d.Location.Version, humanize.Comma(d.Location.Start),
		humanize.IBytes(uint64(d.Location.Span)), d.Location.Flags)

	fields := []struct {
		name  string
		value string
	}{
		{"Artist", d.Artist},
		{"Title", d.Title},
		{"Album", d.Album},
		{"Comment", d.Comment},
		{"Genre", d.Genre},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(w, "  %-8s %s\n", f.name+":", f.value)
		}
	}
	if d.TrackNumber != 0 {
		fmt.Fprintf(w, "  %-8s %d\n", "Track:", d.TrackNumber)
	}
	if d.Year != 0 {
		fmt.Fprintf(w, "  %-8s %d\n", "Year:", d.Year)
	}

	for _, it := range d.Items {
		if it.Binary {
			fmt.Fprintf(w, "  %s = <%d bytes binary>\n", it.Key, len(it.Value)/2)
			continue
		}
		fmt.Fprintf(w, "  %s = %s\n", it.Key, it.Value)
	}
	for _, warn := range d.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}
	fmt.Fprintln(w)
}
