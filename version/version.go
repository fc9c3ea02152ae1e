package version

import (
	"fmt"
	"io"
)

// Version is overwritten at build time via ldflags.
var Version = "dev"

func Write(w io.Writer) {
	fmt.Fprintln(w, Version)
}
