package styles

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal colour gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, from, to, lipgloss.NewStyle())
}

// applyGradient renders each grapheme cluster with base and a foreground
// blended from from to to.
func applyGradient(text string, from, to lipgloss.Color, base lipgloss.Style) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 1 {
		return base.Foreground(from).Render(text)
	}

	colors := blendColors(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		style := base.Foreground(lipgloss.Color(colorToHex(colors[i])))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// Blend returns the colour at t along the HCL blend from a to b. t is
// clamped to [0, 1].
func Blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Min(math.Max(t, 0), 1)
	c1, _ := colorful.MakeColor(lipglossToColor(a))
	c2, _ := colorful.MakeColor(lipglossToColor(b))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// HandleGrip renders the drag handle grip of the given width on surface.
// fraction is the continuous snap index divided by the last index: the
// grip brightens toward the accent as the sheet expands.
func HandleGrip(width int, fraction float64, surface lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	base := Blend(T().HandleLow, T().HandleHigh, fraction)
	edge := Blend(T().HandleLow, base, 0.5)
	grip := strings.Repeat("━", width)
	split := len("━") * (width / 2)
	half := applyGradient(grip[:split], edge, base, surface)
	rest := applyGradient(grip[split:], base, edge, surface)
	return half + rest
}

// blendColors returns size colours blended between from and to in HCL
// space.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{lipglossToColor(from)}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}
	return colors
}

func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// ANSI palette indices have no fixed RGB value.
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
