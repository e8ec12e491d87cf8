package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/bbox"
	"github.com/lehigh-university-libraries/funsd-eda/pkg/stats"
)

var (
	plotBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	plotGrid       = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	plotPoint      = color.NRGBA{R: 148, G: 0, B: 211, A: 255} // darkviolet

	// 60% opacity for points
	plotPointMask = image.NewUniform(color.Alpha{A: 153})

	plotText      = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	barMeaningful = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 255}
	barIrrelevant = color.NRGBA{R: 0xFF, G: 0x57, B: 0x33, A: 255}
)

const (
	plotGridStep    = 100
	plotPointRadius = 2

	// DefaultBarsSize is the side of the label distribution chart in pixels
	DefaultBarsSize = 600
)

// RenderScatter plots points on the 1000x1000 normalized grid and scales the
// result to a size x size image. Rows grow downward like on the scanned page,
// so the plot reads the same way as the documents do.
func RenderScatter(points []bbox.Point, size int) *image.NRGBA {
	canvas := imaging.New(bbox.Scale+1, bbox.Scale+1, plotBackground)
	bounds := canvas.Bounds()

	grid := image.NewUniform(plotGrid)
	for v := 0; v <= bbox.Scale; v += plotGridStep {
		draw.Draw(canvas, image.Rect(v, 0, v+1, bounds.Dy()), grid, image.Point{}, draw.Src)
		draw.Draw(canvas, image.Rect(0, v, bounds.Dx(), v+1), grid, image.Point{}, draw.Src)
	}

	ink := image.NewUniform(plotPoint)
	for _, p := range points {
		x, y := int(p.X+0.5), int(p.Y+0.5)
		r := image.Rect(x-plotPointRadius, y-plotPointRadius, x+plotPointRadius+1, y+plotPointRadius+1).Intersect(bounds)
		if r.Empty() {
			continue
		}
		draw.DrawMask(canvas, r, ink, image.Point{}, plotPointMask, image.Point{}, draw.Over)
	}

	if size > 0 && size != bounds.Dx() {
		return imaging.Resize(canvas, size, size, imaging.Lanczos)
	}
	return canvas
}

// SaveScatter renders the points and writes the image, the format follows the file extension
func SaveScatter(path string, points []bbox.Point, size int) error {
	return imaging.Save(RenderScatter(points, size), path)
}

// RenderLabelBars draws the meaningful and irrelevant token counts as two bars
// on a size x size canvas, each labelled with its share of all tokens. With no
// tokens only the axis and the category names are drawn.
func RenderLabelBars(counts stats.LabelCounts, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultBarsSize
	}
	canvas := imaging.New(size, size, plotBackground)

	margin := size / 10
	top := 2 * margin
	baseline := size - margin
	plotWidth := size - 2*margin
	barWidth := plotWidth / 4

	bars := []struct {
		name  string
		count int
		color color.NRGBA
	}{
		{"Meaningful (Q/A)", counts.Meaningful, barMeaningful},
		{"Irrelevant (O)", counts.Irrelevant, barIrrelevant},
	}

	tallest := max(counts.Meaningful, counts.Irrelevant)
	for i, bar := range bars {
		center := margin + plotWidth*(2*i+1)/4
		drawText(canvas, bar.name, center, baseline+15)

		if tallest <= 0 || counts.Total <= 0 {
			continue
		}

		height := int(math.Round(float64(bar.count) / float64(tallest) * float64(baseline-top)))
		rect := image.Rect(center-barWidth/2, baseline-height, center+barWidth/2, baseline)
		draw.Draw(canvas, rect, image.NewUniform(bar.color), image.Point{}, draw.Src)

		pct := float64(bar.count) / float64(counts.Total) * 100
		drawText(canvas, fmt.Sprintf("%.1f%%", pct), center, baseline-height-4)
	}

	draw.Draw(canvas, image.Rect(margin, baseline, size-margin, baseline+1), image.NewUniform(plotText), image.Point{}, draw.Src)

	return canvas
}

// SaveLabelBars renders the label distribution chart and writes the image
func SaveLabelBars(path string, counts stats.LabelCounts, size int) error {
	return imaging.Save(RenderLabelBars(counts, size), path)
}

// drawText writes text centered on x with its baseline at y
func drawText(dst draw.Image, text string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(plotText),
		Face: basicfont.Face7x13,
	}
	d.Dot = fixed.Point26_6{X: fixed.I(x) - d.MeasureString(text)/2, Y: fixed.I(y)}
	d.DrawString(text)
}
