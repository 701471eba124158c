package cli

import (
	"github.com/spf13/cobra"

	"github.com/iconclip/iconclip/pkg/pipeline"
	"github.com/iconclip/iconclip/pkg/render"
)

// styleFlags holds the flags shared by copy and render.
type styleFlags struct {
	color      string
	background string
	padding    float64
	radius     float64
	size       int
	format     string
	noCache    bool
	refresh    bool
}

// register adds the style flags to cmd, seeded from the config defaults.
func (f *styleFlags) register(cmd *cobra.Command, cfg Config) {
	cmd.Flags().StringVarP(&f.color, "color", "c", cfg.Color, "icon color (hex or SVG color name)")
	cmd.Flags().StringVarP(&f.background, "background", "b", cfg.Background, "background color, or 'transparent'")
	cmd.Flags().Float64VarP(&f.padding, "padding", "p", cfg.Padding, "padding as a fraction of the icon size (0-0.5)")
	cmd.Flags().Float64VarP(&f.radius, "radius", "r", cfg.Radius, "corner radius percentage (0-50)")
	cmd.Flags().IntVarP(&f.size, "size", "s", cfg.Size, "raster size in pixels (png only)")
	cmd.Flags().StringVarP(&f.format, "format", "f", pipeline.FormatSVG, "output format: svg or png")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even if cached")
}

// style builds the render style from the flags.
func (f *styleFlags) style() render.Style {
	return render.Style{
		Color:        f.color,
		Background:   f.background,
		Padding:      f.padding,
		CornerRadius: f.radius,
		SizePx:       f.size,
	}
}

// copyCommand creates the copy command, the tool's main verb.
func (c *CLI) copyCommand() *cobra.Command {
	var flags styleFlags

	cmd := &cobra.Command{
		Use:   "copy <pack/icon | icon>",
		Short: "Render an icon and place it on the clipboard",
		Long: `Copy renders a styled icon and places it on the system clipboard.

PNG output is written as typed image data, which most applications paste
directly. SVG output is written as plain text for targets that accept
markup. A bare icon name uses the default pack from the config file.`,
		Example: `  iconclip copy heart
  iconclip copy outline/heart -c "#ff0000" -p 0.1
  iconclip copy solid/star -f png -b "#112233" -r 25 -s 512`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeIconRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, icon, err := parseRef(args[0], c.Config.Pack)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				Pack:    pack,
				Icon:    icon,
				Style:   flags.style(),
				Formats: []string{flags.format},
				Copy:    true,
				Refresh: flags.refresh,
			})
			if err != nil {
				return err
			}

			printSuccess("Copied %s/%s as %s", pack, icon, result.Copied)
			printCacheStatus(result.CacheInfo.ArtifactHit)
			return nil
		},
	}

	flags.register(cmd, c.Config)
	return cmd
}
