package hue

import "strings"

const separator = "/"

// Slash joins segments with a single "/". Segments are used verbatim.
func Slash(segments ...string) string {
	return strings.Join(segments, separator)
}

// URLFunc maps a resource identifier to the URL of that resource.
type URLFunc func(id string) string

// ObjectURL returns a URLFunc producing base/id followed by any subpath segments.
func ObjectURL(base string, subpath ...string) URLFunc {
	return func(id string) string {
		return Slash(append([]string{base, id}, subpath...)...)
	}
}
