// Command apetag inspects and edits APEv2 tags.
//
// Usage:
//
//	apetag probe song.mpc
//	apetag dump --output json *.mpc
//	apetag set --title "New Title" --item "Custom=value" song.mpc
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
