// Package render turns pack descriptions (markdown) into terminal text.
package render

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

const minWidth = 10

var (
	mu sync.Mutex
	// Renderers are cached by style and wrap width. WithAutoStyle is avoided
	// because it queries the terminal and can block.
	renderers = map[string]*glamour.TermRenderer{}
	style     = defaultStyle()
)

func defaultStyle() string {
	if s := os.Getenv("GLAMOUR_STYLE"); s != "" {
		return s
	}
	return styles.DarkStyle
}

// SetStyle selects a glamour standard style ("dark", "light", "notty").
func SetStyle(name string) {
	mu.Lock()
	defer mu.Unlock()
	style = name
}

// Markdown renders md wrapped at width. Rendering failures return md as is.
func Markdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}

	mu.Lock()
	key := style + ":" + strconv.Itoa(width)
	r := renderers[key]
	current := style
	mu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(current),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mu.Lock()
		if existing := renderers[key]; existing != nil {
			r = existing
		} else {
			renderers[key] = rr
			r = rr
		}
		mu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
