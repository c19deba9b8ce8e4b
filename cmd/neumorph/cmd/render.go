package cmd

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/go-drift/neumorphism/pkg/config"
	"github.com/go-drift/neumorphism/pkg/effects"
	"github.com/go-drift/neumorphism/pkg/errors"
	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/layout"
	"github.com/go-drift/neumorphism/pkg/rendering"
	"github.com/go-drift/neumorphism/pkg/widgets"
)

const (
	defaultStyle      = "light_outside"
	defaultSize       = "120x80"
	defaultFill       = "#E3EDF7"
	defaultRadius     = 12
	defaultBackground = "#E3EDF7"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	style      string
	in         string
	size       string
	fill       string
	radius     float64
	background string
	smooth     bool
	border     int
	out        string
}

func newRenderCmd(global *globalOpts) *cobra.Command {
	opts := renderOpts{
		style:      defaultStyle,
		size:       defaultSize,
		fill:       defaultFill,
		radius:     defaultRadius,
		background: defaultBackground,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a box or an image with a shadow style to a PNG",
		Example: `  neumorph render --style dark_outside --fill "#232428" --background "#232428" --out button.png
  neumorph render --style light_inside --in avatar.png --smooth --out avatar-shadow.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.out == "" {
				return fmt.Errorf("--out is required")
			}
			doc, err := loadStyles(cmd.Context(), global)
			if err != nil {
				return err
			}
			style, err := doc.Style(opts.style)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), style, &opts, cmd.Flags().Changed("smooth"), cmd.Flags().Changed("border"))
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", opts.style, "style name")
	cmd.Flags().StringVarP(&opts.in, "in", "i", "", "image to wrap instead of a box")
	cmd.Flags().StringVar(&opts.size, "size", opts.size, "box size as WxH")
	cmd.Flags().StringVar(&opts.fill, "fill", opts.fill, "box fill color")
	cmd.Flags().Float64Var(&opts.radius, "radius", opts.radius, "box corner radius")
	cmd.Flags().StringVar(&opts.background, "background", opts.background, `page color behind the shadows ("transparent" for none)`)
	cmd.Flags().BoolVar(&opts.smooth, "smooth", false, "use the smooth pipeline (overrides the style)")
	cmd.Flags().IntVar(&opts.border, "border", 0, "inside shadow inset in pixels (overrides the style)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output image path")

	return cmd
}

func runRender(ctx context.Context, style config.Style, opts *renderOpts, smoothSet, borderSet bool) error {
	logger := loggerFromContext(ctx)

	child, err := buildChild(opts)
	if err != nil {
		return err
	}
	shadows, err := style.ShadowConfig()
	if err != nil {
		return err
	}
	containerOpts := style.ContainerOptions()
	if smoothSet {
		containerOpts = append(containerOpts, widgets.WithSmooth(opts.smooth))
	}
	if borderSet {
		containerOpts = append(containerOpts, widgets.WithBorderInset(opts.border))
	}
	containerOpts = append(containerOpts, widgets.WithEffectOptions(effects.WithLogger(logger)))

	container, err := widgets.Wrap(child, shadows, containerOpts...)
	if err != nil {
		return err
	}
	background, err := graphics.ParseColor(opts.background)
	if err != nil {
		return err
	}

	img := drawFrame(container, background)
	if img == nil {
		logger.Warn("nothing to render", "style", opts.style)
		return nil
	}
	logger.Debug("rendered",
		"style", opts.style,
		"smooth", container.Effect().Smooth(),
		"border", container.Effect().BorderInset(),
		"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
	)

	if err := imaging.Save(img, opts.out); err != nil {
		return &errors.Error{Op: "render.save", Kind: errors.KindIO, Err: err}
	}
	logger.Info("wrote", "path", opts.out)
	return nil
}

// buildChild returns the element to wrap: the --in image, or a rounded box.
func buildChild(opts *renderOpts) (layout.RenderBox, error) {
	if opts.in != "" {
		src, err := imaging.Open(opts.in)
		if err != nil {
			return nil, &errors.Error{Op: "render.open", Kind: errors.KindIO, Err: err}
		}
		return widgets.NewImageBox(src), nil
	}
	w, h, err := parseSize(opts.size)
	if err != nil {
		return nil, err
	}
	fill, err := graphics.ParseColor(opts.fill)
	if err != nil {
		return nil, err
	}
	return widgets.NewDecoratedBox(fill, opts.radius, w, h), nil
}

// parseSize reads "WxH".
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, errors.InvalidConfig("size", s, "want WxH")
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, errors.InvalidConfig("size", s, "want positive WxH")
	}
	return w, h, nil
}

// drawFrame lays out and paints root onto a background. When the container
// reserves less margin than its shadows reach, the frame grows so nothing
// is clipped. Returns nil for an empty layout.
func drawFrame(root *widgets.ShadowContainer, background graphics.Color) *image.RGBA {
	owner := &layout.PipelineOwner{}
	layout.Attach(root, owner)
	defer layout.Attach(root, nil)

	owner.ScheduleLayout(root)
	owner.SchedulePaint(root)
	owner.FlushLayoutForRoot(root, layout.Unbounded())

	size := root.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return nil
	}
	reqX, reqY := root.Effect().RequiredMargin()
	m := root.Margins()
	padX := math.Ceil(math.Max(0, reqX-math.Min(m.Left, m.Right)))
	padY := math.Ceil(math.Max(0, reqY-math.Min(m.Top, m.Bottom)))

	bounds := image.Rect(0, 0, int(math.Ceil(size.Width+2*padX)), int(math.Ceil(size.Height+2*padY)))
	img := image.NewRGBA(bounds)
	if background.Alpha() > 0 {
		draw.Draw(img, bounds, image.NewUniform(background), image.Point{}, draw.Src)
	}

	canvas := rendering.NewImageCanvas(img)
	canvas.Translate(padX, padY)
	owner.FlushPaint()
	owner.PaintRoot(root, canvas)
	return img
}
