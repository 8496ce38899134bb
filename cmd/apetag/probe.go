package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

func newProbeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe FILE...",
		Short: "Report whether files carry an APE tag and where it lives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				if err := probeFile(cmd.OutOrStdout(), a.openOptions(), path); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}

func probeFile(w io.Writer, opts []apetag.Option, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	return probe(w, f, opts, path)
}

// probe prints where the tag in r lives. Only a missing tag is reported as
// "no tag"; read faults are returned.
func probe(w io.Writer, r io.ReadSeeker, opts []apetag.Option, path string) error {
	loc, err := apetag.Locate(r, opts...)
	if errors.Is(err, apetag.ErrNotFound) {
		fmt.Fprintf(w, "%s: no tag\n", path)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: APE v%d at offset %d, %s, %d items%s\n",
		path, loc.Primary.Version, loc.Start, humanize.IBytes(uint64(loc.Span)),
		loc.Primary.ItemCount, placement(loc))
	return nil
}

func placement(loc apetag.Location) string {
	if loc.AtStart {
		return " (start of file)"
	}
	return ""
}
