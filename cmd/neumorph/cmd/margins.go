package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/neumorphism/pkg/config"
	"github.com/go-drift/neumorphism/pkg/widgets"
)

func newMarginsCmd(global *globalOpts) *cobra.Command {
	style := defaultStyle

	cmd := &cobra.Command{
		Use:   "margins",
		Short: "Print the margins a style reserves around its element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadStyles(cmd.Context(), global)
			if err != nil {
				return err
			}
			s, err := doc.Style(style)
			if err != nil {
				return err
			}
			return printMargins(cmd.OutOrStdout(), style, s)
		},
	}
	cmd.Flags().StringVarP(&style, "style", "s", style, "style name")
	return cmd
}

func printMargins(w io.Writer, name string, s config.Style) error {
	shadows, err := s.ShadowConfig()
	if err != nil {
		return err
	}
	c, err := widgets.Wrap(nil, shadows, s.ContainerOptions()...)
	if err != nil {
		return err
	}
	x, y := c.Effect().RequiredMargin()
	m := c.Margins()
	mode := "auto"
	if c.MarginsDisabled() {
		mode = "fixed"
	}

	fmt.Fprintf(w, "%s\n", styleName.Render(name))
	fmt.Fprintf(w, "  %s %g x %g\n", styleLabel.Render("required "), x, y)
	fmt.Fprintf(w, "  %s %g %g %g %g %s\n", styleLabel.Render("container"), m.Left, m.Top, m.Right, m.Bottom, styleDim.Render("("+mode+")"))
	return nil
}
