package satpack

import (
	"fmt"
	"io"
)

// hex_dump writes the classic offset / hex / printable-ASCII dump.  Used
// by the CLI's verbose mode to show frames and codewords as they go by.
func hex_dump(w io.Writer, p []byte) {
	var offset = 0
	var length = len(p)

	for length > 0 {
		var n = min(length, 16)

		fmt.Fprintf(w, "  %03x: ", offset)
		for i := 0; i < n; i++ {
			fmt.Fprintf(w, " %02x", p[i])
		}
		for i := n; i < 16; i++ {
			fmt.Fprintf(w, "   ")
		}
		fmt.Fprintf(w, "  ")
		for i := 0; i < n; i++ {
			if p[i] >= 0x20 && p[i] <= 0x7E {
				fmt.Fprintf(w, "%c", p[i])
			} else {
				fmt.Fprintf(w, ".")
			}
		}
		fmt.Fprintf(w, "\n")
		p = p[n:]
		offset += n
		length -= n
	}
}
