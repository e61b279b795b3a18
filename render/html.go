package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// htmlHeader carries the SVG 1.1 doctype so browsers render the embedded
// markup standalone.
const htmlHeader = `<?xml version="1.0" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN"
"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
`

// CreateHTML writes one or more SVG documents embedded in a minimal HTML
// file, handy for eyeballing a whole set of panels at once.
func CreateHTML(path string, svgs ...string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteHTML(file, svgs...)
}

// WriteHTML writes SVG documents embedded in minimal HTML markup.
func WriteHTML(w io.Writer, svgs ...string) error {
	if len(svgs) == 0 {
		return errors.New("no svg documents to embed")
	}
	_, err := fmt.Fprintf(w, "%s<html>%s</html>\n", htmlHeader, strings.Join(svgs, "\n"))
	return err
}
