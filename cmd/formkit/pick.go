package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goliatone/go-formkit/pkg/catalog"
)

// errAborted is returned when the prompt is interrupted.
var errAborted = errors.New("pick: aborted")

// picker chooses one story key.
type picker func(keys []string) (string, error)

func newPickCmd(state *app) *cobra.Command {
	src := &catalogSource{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a story interactively and print its markup and descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, state, *src)
		},
	}

	cmd.Flags().StringVar(&src.openapi, "openapi", "", "OpenAPI document whose request body becomes a section")
	cmd.Flags().StringVar(&src.operation, "operation", "", "Operation id to import from --openapi")

	return cmd
}

func runPick(cmd *cobra.Command, state *app, src catalogSource) error {
	cat, err := state.loadCatalog(cmd.Context(), src)
	if err != nil {
		return err
	}

	key, err := state.pick(cat.Keys())
	if err != nil {
		return err
	}
	only, err := cat.Only(key)
	if err != nil {
		return err
	}

	composer, err := state.newComposer()
	if err != nil {
		return err
	}
	rendered, err := catalog.Render(composer, only)
	if err != nil {
		return err
	}
	story := rendered.Sections[0].Stories[0]

	descriptor, err := json.MarshalIndent(story.Output.Descriptor, "", "  ")
	if err != nil {
		return fmt.Errorf("pick: encode descriptor: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render(story.Key))
	fmt.Fprintln(out, mutedStyle.Render("markup"))
	fmt.Fprintln(out, story.Output.HTML)
	fmt.Fprintln(out, mutedStyle.Render("descriptor"))
	fmt.Fprintln(out, string(descriptor))
	return nil
}

func surveyPick(keys []string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("pick: an interactive terminal is required")
	}
	if len(keys) == 0 {
		return "", errors.New("pick: catalog has no stories")
	}

	var key string
	prompt := &survey.Select{
		Message:  "Story:",
		Options:  keys,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &key); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return key, nil
}
