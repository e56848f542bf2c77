package main

import (
	"os"
	"slices"
	"strings"

	"github.com/jacksmith/album/internal/album"
	"github.com/jacksmith/album/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for album.

To load completions:

Bash:
  $ source <(album completion bash)
  # To load completions for each session, execute once:
  $ album completion bash > /etc/bash_completion.d/album

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ album completion zsh > "${fpath[1]}/_album"

Fish:
  $ album completion fish | source
  # To load completions for each session, execute once:
  $ album completion fish > ~/.config/fish/completions/album.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeDeckNames completes the first argument with deck names whose
// normalized form starts with what has been typed.
func completeDeckNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	a, err := storage.Open(".").Load(albumFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	want := album.Normalize(toComplete)
	var completions []string
	for name := range a.DeckNames() {
		if strings.HasPrefix(album.Normalize(name), want) {
			completions = append(completions, name)
		}
	}
	slices.Sort(completions)

	return completions, cobra.ShellCompDirectiveNoFileComp
}
