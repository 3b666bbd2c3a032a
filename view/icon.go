package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// IconProps configures ArrowIcon. Zero values fall back to the card defaults.
type IconProps struct {
	Class  string
	Width  int
	Height int
}

const arrowPath = "M3 8h10m0 0L8 3m5 5-5 5"

// ArrowIcon renders the right-pointing arrow used on calls to action.
func ArrowIcon(p IconProps) g.Node {
	if p.Class == "" {
		p.Class = "project-arrow"
	}
	if p.Width <= 0 {
		p.Width = 16
	}
	if p.Height <= 0 {
		p.Height = 16
	}
	return g.El("svg",
		h.Class(p.Class),
		g.Attr("width", strconv.Itoa(p.Width)),
		g.Attr("height", strconv.Itoa(p.Height)),
		g.Attr("viewBox", "0 0 16 16"),
		g.Attr("fill", "none"),
		h.Aria("hidden", "true"),
		g.El("path",
			g.Attr("d", arrowPath),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
		),
	)
}
