package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/domain"
)

// chartPalette cycles per scenario; shared by the HTML and PDF charts.
var chartPalette = []string{"#3AA99F", "#4385BE", "#DA702C", "#8B7EC8", "#879A39", "#D14D41", "#D0A215"}

// chartFrame maps (age, assets) onto a plotting rectangle.
type chartFrame struct {
	X, Y, W, H       float64
	MinYear, MaxYear int
	MaxAssets        float64
}

// newChartFrame sizes the axes to cover every scenario. ok is false when there is nothing to plot.
func newChartFrame(scenarios []domain.ScenarioSummary, x, y, w, h float64) (chartFrame, bool) {
	f := chartFrame{X: x, Y: y, W: w, H: h}
	first := true
	for _, sc := range scenarios {
		years, assets := sc.Projection.Series()
		for i, yr := range years {
			if first || yr < f.MinYear {
				f.MinYear = yr
			}
			if first || yr > f.MaxYear {
				f.MaxYear = yr
			}
			first = false
			if assets[i] > f.MaxAssets {
				f.MaxAssets = assets[i]
			}
		}
	}
	if first {
		return f, false
	}
	f.MaxAssets = niceCeil(f.MaxAssets)
	return f, true
}

// Point returns the drawing coordinates; y grows downwards.
func (f chartFrame) Point(year int, assets float64) (float64, float64) {
	span := float64(f.MaxYear - f.MinYear)
	px := f.X
	if span > 0 {
		px += float64(year-f.MinYear) / span * f.W
	}
	py := f.Y + f.H
	if f.MaxAssets > 0 {
		py -= assets / f.MaxAssets * f.H
	}
	return px, py
}

// YTicks returns n+1 evenly spaced asset values from zero to the axis maximum.
func (f chartFrame) YTicks(n int) []float64 {
	ticks := make([]float64, n+1)
	for i := range ticks {
		ticks[i] = f.MaxAssets * float64(i) / float64(n)
	}
	return ticks
}

// XTicks returns ages on a step of 5 (or every age for short spans).
func (f chartFrame) XTicks() []int {
	step := 5
	if f.MaxYear-f.MinYear < 10 {
		step = 1
	}
	var ticks []int
	start := (f.MinYear + step - 1) / step * step
	for y := start; y <= f.MaxYear; y += step {
		ticks = append(ticks, y)
	}
	return ticks
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*exp {
			return m * exp
		}
	}
	return 10 * exp
}

type svgSeries struct {
	Name   string
	Color  string
	Points string
}

type svgTick struct {
	Pos   float64
	Label string
}

// svgChart is the view model rendered by the HTML template.
type svgChart struct {
	Width, Height float64
	Frame         chartFrame
	Series        []svgSeries
	XTicks        []svgTick
	YTicks        []svgTick
}

func buildSVGChart(scenarios []domain.ScenarioSummary) *svgChart {
	const width, height = 800.0, 360.0
	frame, ok := newChartFrame(scenarios, 70, 20, width-90, height-60)
	if !ok {
		return nil
	}
	c := &svgChart{Width: width, Height: height, Frame: frame}
	for i, sc := range scenarios {
		years, assets := sc.Projection.Series()
		pts := make([]string, len(years))
		for j := range years {
			x, y := frame.Point(years[j], assets[j])
			pts[j] = fmtCoord(x) + "," + fmtCoord(y)
		}
		c.Series = append(c.Series, svgSeries{
			Name:   sc.Name,
			Color:  chartPalette[i%len(chartPalette)],
			Points: strings.Join(pts, " "),
		})
	}
	for _, yr := range frame.XTicks() {
		x, _ := frame.Point(yr, 0)
		c.XTicks = append(c.XTicks, svgTick{Pos: x, Label: strconv.Itoa(yr)})
	}
	for _, v := range frame.YTicks(4) {
		_, y := frame.Point(frame.MinYear, v)
		c.YTicks = append(c.YTicks, svgTick{Pos: y, Label: cli.FormatCompact(v)})
	}
	return c
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
