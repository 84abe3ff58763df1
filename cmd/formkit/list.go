package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/pkg/catalog"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	keyStyle     = lipgloss.NewStyle().PaddingLeft(2)
)

func newListCmd(state *app) *cobra.Command {
	src := &catalogSource{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog sections and story keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, state, *src)
		},
	}

	cmd.Flags().StringVar(&src.openapi, "openapi", "", "OpenAPI document whose request body becomes a section")
	cmd.Flags().StringVar(&src.operation, "operation", "", "Operation id to import from --openapi")

	return cmd
}

func runList(cmd *cobra.Command, state *app, src catalogSource) error {
	cat, err := state.loadCatalog(cmd.Context(), src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, section := range cat.Sections {
		fmt.Fprintf(out, "%s %s\n", headingStyle.Render(section.Title), mutedStyle.Render("("+section.Component+")"))
		for _, story := range section.Stories {
			fmt.Fprintln(out, keyStyle.Render(catalog.Key(section, story)))
		}
	}
	return nil
}
