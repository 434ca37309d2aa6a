package cmd

import (
	"fmt"
	"io"
	"runtime"
)

const about = `hsp-to-bed %s
Convert HSPs from pairwise local alignment searches to BED format.

  module:     github.com/jjtimmons/hspbed
  runtime:    %s %s/%s
  copyright:  Copyright (c) 2014-2026 the hspbed authors
  license:    GNU Lesser General Public License v3 or later
              http://www.gnu.org/licenses/lgpl.html
`

// writeAbout writes the about banner.
func writeAbout(w io.Writer) error {
	_, err := fmt.Fprintf(w, about, version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}
