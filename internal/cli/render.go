package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iconclip/iconclip/pkg/pipeline"
)

// renderCommand creates the render command for writing artifacts to files.
func (c *CLI) renderCommand() *cobra.Command {
	var flags styleFlags
	var output string
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "render <pack/icon | icon>",
		Short: "Render an icon to a file",
		Long: `Render writes one or more styled artifacts to disk instead of the
clipboard. With multiple formats the output path is used as a base and
the format extension is appended.`,
		Example: `  iconclip render outline/heart -o heart.svg
  iconclip render heart -f png -s 512 -o ./art/heart.png
  iconclip render solid/star -F svg,png -o star`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeIconRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, icon, err := parseRef(args[0], c.Config.Pack)
			if err != nil {
				return err
			}
			formats := parseFormats(formatsStr, flags.format)

			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.RenderArtifacts(cmd.Context(), pipeline.Options{
				Pack:    pack,
				Icon:    icon,
				Style:   flags.style(),
				Formats: formats,
				Refresh: flags.refresh,
			})
			if err != nil {
				return err
			}

			base := basePath(output, icon)
			for _, format := range formats {
				path := base + "." + format
				if len(formats) == 1 && output != "" {
					path = output
				}
				if err := writeArtifact(path, result.Artifacts[format]); err != nil {
					return err
				}
				printFile(path)
			}
			printSuccess("Rendered %s/%s", pack, icon)
			printCacheStatus(result.CacheInfo.ArtifactHit)
			return nil
		},
	}

	flags.register(cmd, c.Config)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "formats", "F", "", "comma-separated formats, overrides --format")

	return cmd
}

// parseFormats resolves the --formats list, falling back to --format.
func parseFormats(list, single string) []string {
	if list == "" {
		return []string{single}
	}
	return strings.Split(list, ",")
}

// basePath derives the base output path. An empty output falls back to
// the icon name in the working directory; a known format extension on
// the output is stripped.
func basePath(output, icon string) string {
	if output == "" {
		return icon
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
