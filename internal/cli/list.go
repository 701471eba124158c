package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCommand creates the list command with packs/icons subcommands.
func (c *CLI) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packs and icons",
	}

	cmd.AddCommand(c.listPacksCommand())
	cmd.AddCommand(c.listIconsCommand())
	cmd.AddCommand(c.searchCommand())

	return cmd
}

func (c *CLI) listPacksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "packs",
		Short: "List installed icon packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.newCatalog()
			if err != nil {
				return err
			}
			for _, p := range cat.Packs() {
				fmt.Println(StyleValue.Render(p.Name()) + " " +
					StyleDim.Render(fmt.Sprintf("(%s, %d icons)", p.Convention(), p.Len())))
			}
			return nil
		},
	}
}

func (c *CLI) listIconsCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "icons <pack>",
		Short:             "List icons in a pack",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completePackNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.newCatalog()
			if err != nil {
				return err
			}
			p, err := cat.Pack(args[0])
			if err != nil {
				return err
			}
			for _, name := range p.Icons() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func (c *CLI) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search icons across all packs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.newCatalog()
			if err != nil {
				return err
			}
			hits := cat.Search(args[0])
			if len(hits) == 0 {
				printInfo("No icons match %q", args[0])
				return nil
			}
			for _, hit := range hits {
				fmt.Println(StyleDim.Render(hit.Pack+"/") + StyleValue.Render(hit.Icon))
			}
			return nil
		},
	}
}
