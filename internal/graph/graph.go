package graph

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/drakos74/iris-knn/internal/model"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	defaultSize = 6.0
	format      = "png"
)

var colours = map[string]color.Color{
	"green":  color.RGBA{G: 128, A: 255},
	"red":    color.RGBA{R: 255, A: 255},
	"blue":   color.RGBA{B: 255, A: 255},
	"black":  color.Black,
	"orange": color.RGBA{R: 255, G: 165, A: 255},
	"purple": color.RGBA{R: 128, B: 128, A: 255},
}

// Colour resolves a colour by name.
func Colour(name string) (color.Color, error) {
	c, ok := colours[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown colour '%s': %w", name, model.InvalidArgumentErr)
	}
	return c, nil
}

// Options configures the rendering of a dataset.
type Options struct {
	Title string
	// Palette maps labels to colour names.
	Palette map[string]string
	// Fallback is the colour of labels missing from the palette.
	Fallback string
	// Legend maps a label to its legend entry.
	Legend func(label string) string
	// Finding is the legend entry of a classified query point.
	Finding string
	// Width and Height of the rendered image in inches.
	Width, Height float64
}

// Context owns one figure. Every scatter plot is created, extended and rendered
// through its own context, nothing is shared between them.
type Context struct {
	plot *plot.Plot
	opts Options
}

// New creates a context holding the scatter plot of the dataset,
// one series per label in order of first appearance.
func New(ds model.Dataset, opts Options) (*Context, error) {
	if opts.Fallback == "" {
		opts.Fallback = "blue"
	}
	if opts.Legend == nil {
		opts.Legend = func(label string) string {
			return label
		}
	}
	if opts.Width <= 0 {
		opts.Width = defaultSize
	}
	if opts.Height <= 0 {
		opts.Height = defaultSize
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = ds.XLabel
	p.Y.Label.Text = ds.YLabel
	p.Legend.Top = true

	series := make(map[string]plotter.XYs)
	for _, s := range ds.Samples {
		series[s.Label] = append(series[s.Label], plotter.XY{X: s.X, Y: s.Y})
	}

	c := &Context{
		plot: p,
		opts: opts,
	}
	for _, label := range ds.Labels() {
		colour, ok := opts.Palette[label]
		if !ok {
			colour = opts.Fallback
		}
		if err := c.scatter(series[label], colour, vg.Points(3), opts.Legend(label)); err != nil {
			return nil, fmt.Errorf("could not plot '%s': %w", label, err)
		}
	}
	return c, nil
}

func (c *Context) scatter(xys plotter.XYs, colour string, radius vg.Length, legend string) error {
	col, err := Colour(colour)
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = col
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	c.plot.Add(s)
	c.plot.Legend.Add(legend, s)
	return nil
}

// AddQuery adds the classified point to the figure.
func (c *Context) AddQuery(p model.Point, label string) error {
	legend := c.opts.Finding
	if label != "" {
		legend = fmt.Sprintf("%s : %s", c.opts.Finding, c.opts.Legend(label))
	}
	return c.scatter(plotter.XYs{{X: p.X, Y: p.Y}}, "black", vg.Points(5), legend)
}

// Render writes the figure as png to the given writer.
func (c *Context) Render(w io.Writer) error {
	wt, err := c.plot.WriterTo(vg.Length(c.opts.Width)*vg.Inch, vg.Length(c.opts.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("could not create canvas: %w", err)
	}
	_, err = wt.WriteTo(w)
	if err != nil {
		return fmt.Errorf("could not render plot: %w", err)
	}
	return nil
}

// Save renders the figure into the given file, the format follows the file extension.
func (c *Context) Save(file string) error {
	if filepath.Ext(file) == "" {
		file = fmt.Sprintf("%s.%s", file, format)
	}
	err := c.plot.Save(vg.Length(c.opts.Width)*vg.Inch, vg.Length(c.opts.Height)*vg.Inch, file)
	if err != nil {
		return fmt.Errorf("could not save plot to '%s' %s: %w", file, err.Error(), model.IOErr)
	}
	log.Info().Str("file", file).Msg("saved plot")
	return nil
}
