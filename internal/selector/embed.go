package selector

import (
	"fmt"
	"html"
	"strings"
)

// Embed describes how a resolved stream is framed: an isolated context that
// may run scripts, autoplay and read its own origin, but may not navigate
// the top-level page.
type Embed struct {
	URL             string
	Sandbox         []string
	Allow           []string
	AllowFullscreen bool
}

// NewEmbed returns the standard player frame for url.
func NewEmbed(url string) Embed {
	return Embed{
		URL:             url,
		Sandbox:         []string{"allow-scripts", "allow-same-origin", "allow-presentation"},
		Allow:           []string{"autoplay", "encrypted-media"},
		AllowFullscreen: true,
	}
}

// HTML renders the frame as an iframe element with escaped attributes.
func (e Embed) HTML() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<iframe src="%s" scrolling="no" frameborder="0"`, html.EscapeString(e.URL))
	if e.AllowFullscreen {
		b.WriteString(" allowfullscreen")
	}
	if len(e.Allow) > 0 {
		fmt.Fprintf(&b, ` allow="%s"`, html.EscapeString(strings.Join(e.Allow, "; ")))
	}
	fmt.Fprintf(&b, ` sandbox="%s"></iframe>`, html.EscapeString(strings.Join(e.Sandbox, " ")))
	return b.String()
}

// AllowsTopNavigation reports whether the sandbox lets the frame navigate
// the embedding page.
func (e Embed) AllowsTopNavigation() bool {
	for _, s := range e.Sandbox {
		if strings.HasPrefix(s, "allow-top-navigation") {
			return true
		}
	}
	return false
}
