package render

import (
	"math/rand"

	"github.com/go-pdf/fpdf"

	"github.com/reignorshine/plansmith/internal/styles"
)

// starSeed keeps the scattered star pattern identical across runs.
const starSeed = 42

const fontFamily = "Helvetica"

// Canvas wraps the PDF document with the absolute-coordinate drawing
// primitives the page composers are built from. Coordinates are in points
// with the origin at the top-left corner of the page.
type Canvas struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewCanvas creates an empty US-letter portrait document.
func NewCanvas() *Canvas {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return &Canvas{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// StartPage begins a new blank page.
func (c *Canvas) StartPage() {
	c.pdf.AddPage()
}

// PageCount returns the number of pages started so far.
func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// Err surfaces the first drawing error recorded by the underlying document.
func (c *Canvas) Err() error {
	return c.pdf.Error()
}

// WriteFile renders the document to disk and closes it.
func (c *Canvas) WriteFile(path string) error {
	return c.pdf.OutputFileAndClose(path)
}

// SetDocumentInfo fills the PDF metadata dictionary.
func (c *Canvas) SetDocumentInfo(title, author, subject, creator string) {
	c.pdf.SetTitle(title, true)
	c.pdf.SetAuthor(author, true)
	c.pdf.SetSubject(subject, true)
	c.pdf.SetCreator(creator, true)
}

// TwilightGradient paints the page background as a banded vertical gradient
// from twilight navy at the top to deep purple at the bottom.
func (c *Canvas) TwilightGradient() {
	const steps = 50
	bandHeight := styles.PageHeight / steps
	for i := 0; i < steps; i++ {
		color := styles.Lerp(styles.TwilightNavy, styles.DeepPurple, float64(i)/steps)
		c.pdf.SetFillColor(color.R, color.G, color.B)
		// Bands overlap by a point so rounding never leaves hairline gaps.
		c.pdf.Rect(0, float64(i)*bandHeight, styles.PageWidth, bandHeight+1, "F")
	}
}

// Stars scatters count dim-to-bright stars across the page. The pattern is
// seeded so every render of the same plan produces identical pages.
func (c *Canvas) Stars(count int) {
	rng := rand.New(rand.NewSource(starSeed))

	c.pdf.SetFillColor(styles.SoftWhite.R, styles.SoftWhite.G, styles.SoftWhite.B)
	for i := 0; i < count; i++ {
		x := rng.Float64() * styles.PageWidth
		y := rng.Float64() * styles.PageHeight
		size := 1 + rng.Float64()*2
		alpha := 0.3 + rng.Float64()*0.7

		c.pdf.SetAlpha(alpha, "Normal")
		c.pdf.Circle(x, y, size, "F")
	}
	c.pdf.SetAlpha(1, "Normal")
}

// RoundedRect fills a rounded rectangle at the given opacity.
func (c *Canvas) RoundedRect(x, y, w, h, radius float64, fill styles.RGB, alpha float64) {
	if alpha < 1 {
		c.pdf.SetAlpha(alpha, "Normal")
		defer c.pdf.SetAlpha(1, "Normal")
	}
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.RoundedRect(x, y, w, h, radius, "1234", "F")
}

// Text draws a string with its baseline at y.
func (c *Canvas) Text(x, y float64, style string, size float64, color styles.RGB, text string) {
	c.pdf.SetFont(fontFamily, style, size)
	c.pdf.SetTextColor(color.R, color.G, color.B)
	c.pdf.Text(x, y, c.translate(text))
}

// CenteredText draws a string horizontally centered on the page.
func (c *Canvas) CenteredText(y float64, style string, size float64, color styles.RGB, text string) {
	c.Text((styles.PageWidth-c.StringWidth(style, size, text))/2, y, style, size, color, text)
}

// RightAlignedText draws a string ending at the given right edge.
func (c *Canvas) RightAlignedText(right, y float64, style string, size float64, color styles.RGB, text string) {
	c.Text(right-c.StringWidth(style, size, text), y, style, size, color, text)
}

// StringWidth measures text in the given font style and size.
func (c *Canvas) StringWidth(style string, size float64, text string) float64 {
	c.pdf.SetFont(fontFamily, style, size)
	return c.pdf.GetStringWidth(c.translate(text))
}

// TruncateToFit drops trailing characters until text plus the ellipsis fits
// maxWidth. Text that already fits is returned unchanged.
func (c *Canvas) TruncateToFit(text, style string, size, maxWidth float64, ellipsis string) string {
	if c.StringWidth(style, size, text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 && c.StringWidth(style, size, string(runes)+ellipsis) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// GlowText draws text with a four-pass offset glow beneath the main layer.
func (c *Canvas) GlowText(x, y float64, style string, size float64, main, glow styles.RGB, offset float64, text string) {
	c.pdf.SetFont(fontFamily, style, size)
	c.pdf.SetTextColor(glow.R, glow.G, glow.B)
	c.pdf.SetAlpha(0.3, "Normal")
	for _, d := range [][2]float64{{offset, offset}, {-offset, -offset}, {offset, -offset}, {-offset, offset}} {
		c.pdf.Text(x+d[0], y+d[1], c.translate(text))
	}
	c.pdf.SetAlpha(1, "Normal")

	c.pdf.SetTextColor(main.R, main.G, main.B)
	c.pdf.Text(x, y, c.translate(text))
}

// Crown draws the procedural three-peak crown icon centered on x with its
// base line at y.
func (c *Canvas) Crown(x, y, size float64) {
	c.pdf.SetDrawColor(styles.CyanGlow.R, styles.CyanGlow.G, styles.CyanGlow.B)
	c.pdf.SetLineWidth(2)

	half := size / 2
	peak := size * 0.8

	c.pdf.Line(x-half, y, x+half, y)

	c.pdf.Line(x-half, y, x-half*0.6, y-peak*0.6)
	c.pdf.Line(x-half*0.6, y-peak*0.6, x-half*0.3, y-peak*0.3)
	c.pdf.Line(x-half*0.3, y-peak*0.3, x, y-peak)
	c.pdf.Line(x, y-peak, x+half*0.3, y-peak*0.3)
	c.pdf.Line(x+half*0.3, y-peak*0.3, x+half*0.6, y-peak*0.6)
	c.pdf.Line(x+half*0.6, y-peak*0.6, x+half, y)
}

// Dot fills a small circle, used for legend markers.
func (c *Canvas) Dot(x, y, radius float64, color styles.RGB) {
	c.pdf.SetFillColor(color.R, color.G, color.B)
	c.pdf.Circle(x, y, radius, "F")
}

// CheckboxOutline strokes an empty square, used for checklist rows.
func (c *Canvas) CheckboxOutline(x, y, size float64, color styles.RGB) {
	c.pdf.SetDrawColor(color.R, color.G, color.B)
	c.pdf.SetLineWidth(1)
	c.pdf.Rect(x, y, size, size, "D")
}
