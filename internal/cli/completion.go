package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts. Once a script is
// loaded, icon references on copy and render complete from the installed
// packs.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for bash, zsh, fish, or powershell.

Load it for the current session:

  source <(iconclip completion bash)
  iconclip completion fish | source

Or install it permanently, for example under zsh:

  iconclip completion zsh > "${fpath[1]}/_iconclip"

With the script loaded, icon arguments tab-complete as pack/icon pairs
from the installed packs.`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}

// completeIconRefs offers pack/icon candidates for a command's first
// argument.
func (c *CLI) completeIconRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cat, err := c.newCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var refs []string
	for _, m := range cat.Search("") {
		refs = append(refs, m.Pack+"/"+m.Icon)
	}
	return refs, cobra.ShellCompDirectiveNoFileComp
}

// completePackNames offers installed pack names for a command's first
// argument.
func (c *CLI) completePackNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cat, err := c.newCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, p := range cat.Packs() {
		names = append(names, p.Name())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
