package ape

import (
	"bytes"
	"testing"

	"github.com/simonhull/apetag/internal/types"
)

func TestCodec_CanHandle(t *testing.T) {
	c := NewCodec(Options{})

	if c.Name() != "APE" {
		t.Errorf("Name = %q, want APE", c.Name())
	}

	tagged := concat(audioBytes(100), tagBytes(t, false, item("Artist", "A")))
	if !c.CanHandle(bytes.NewReader(tagged)) {
		t.Error("CanHandle = false for tagged file")
	}
	if c.CanHandle(bytes.NewReader(audioBytes(100))) {
		t.Error("CanHandle = true for untagged file")
	}
}

func TestCodec_Populate(t *testing.T) {
	c := NewCodec(Options{Path: "song.mpc"})

	tags := &types.Tags{Artist: "Existing", Genre: "Kept"}
	warnings, err := c.Populate(bytes.NewReader(audioBytes(100)), tags)
	if err != nil || warnings != nil {
		t.Fatalf("Populate untagged = %v, %v; want nil, nil", warnings, err)
	}
	if tags.Artist != "Existing" || tags.Genre != "Kept" {
		t.Errorf("untagged file modified the record: %+v", tags)
	}

	tagged := concat(audioBytes(100), tagBytes(t, true, item("Artist", "A"), item("Date", "1987")))
	if _, err := c.Populate(bytes.NewReader(tagged), tags); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if tags.Artist != "A" || tags.Year != 1987 || tags.Genre != "Kept" {
		t.Errorf("Populate = %+v", tags)
	}
}

func TestCodec_PopulateTwice(t *testing.T) {
	c := NewCodec(Options{})
	tagged := concat(audioBytes(50), tagBytes(t, true, item("Title", "T"), item("Custom", "x")))

	tags := &types.Tags{}
	tags.Add("Stale", []byte("old"))
	for range 2 {
		if _, err := c.Populate(bytes.NewReader(tagged), tags); err != nil {
			t.Fatalf("Populate: %v", err)
		}
	}

	items := tags.Items()
	if len(items) != 1 || items[0].Key != "Custom" || string(items[0].Value) != "x" {
		t.Errorf("items = %+v, want a single Custom item", items)
	}
	if tags.Title != "T" {
		t.Errorf("Title = %q", tags.Title)
	}
}

func TestCodec_Write(t *testing.T) {
	c := NewCodec(Options{})
	f := memFile(t, audioBytes(64))

	if err := c.Write(f, &types.Tags{Genre: "Ambient"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	res, err := c.Read(f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if res.Tags.Genre != "Ambient" {
		t.Errorf("Genre = %q", res.Tags.Genre)
	}
}
