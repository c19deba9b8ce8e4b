package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/neumorphism/pkg/config"
	"github.com/go-drift/neumorphism/pkg/graphics"
)

func newStylesCmd(global *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available shadow styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadStyles(cmd.Context(), global)
			if err != nil {
				return err
			}
			return printStyles(cmd.OutOrStdout(), doc)
		},
	}
}

func printStyles(w io.Writer, doc *config.Document) error {
	for _, name := range doc.Names() {
		s := doc.Styles[name]
		shadows, err := s.ShadowConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", styleName.Render(name), styleDim.Render(describeStyle(s, shadows)))
	}
	return nil
}

// describeStyle summarizes a style on one line, e.g.
// "2 outside, border 1, smooth".
func describeStyle(s config.Style, shadows graphics.ShadowConfig) string {
	var parts []string
	if n := len(shadows.Filter(graphics.PlacementOutside)); n > 0 {
		parts = append(parts, fmt.Sprintf("%d outside", n))
	}
	if n := len(shadows.Filter(graphics.PlacementInside)); n > 0 {
		parts = append(parts, fmt.Sprintf("%d inside", n))
	}
	if len(parts) == 0 {
		parts = append(parts, "no shadows")
	}
	if s.BorderInset > 0 {
		parts = append(parts, fmt.Sprintf("border %d", s.BorderInset))
	}
	if s.Smooth {
		parts = append(parts, "smooth")
	}
	switch {
	case len(s.Margins) > 0:
		parts = append(parts, "fixed margins")
	case s.DisableMargins:
		parts = append(parts, "no margins")
	}
	return strings.Join(parts, ", ")
}
