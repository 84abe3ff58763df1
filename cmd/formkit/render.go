package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/pkg/catalog"
	"github.com/goliatone/go-formkit/pkg/diag"
)

type renderOptions struct {
	format string
	output string
	strict bool
	source catalogSource
}

func newRenderCmd(state *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the catalog as an HTML page or JSON descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, state, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "Output format (html, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any component reports a diagnostic")
	addSourceFlags(cmd, &opts.source)

	return cmd
}

func addSourceFlags(cmd *cobra.Command, src *catalogSource) {
	cmd.Flags().StringVar(&src.openapi, "openapi", "", "OpenAPI document whose request body becomes a section")
	cmd.Flags().StringVar(&src.operation, "operation", "", "Operation id to import from --openapi")
	cmd.Flags().StringVar(&src.story, "story", "", "Render a single story by key (<section>/<story>)")
}

func runRender(cmd *cobra.Command, state *app, opts *renderOptions) error {
	ctx := cmd.Context()

	renderers, err := newRenderers()
	if err != nil {
		return err
	}
	format := opts.format
	if format == "" {
		format = "html"
	}
	renderer, err := renderers.Get(format)
	if err != nil {
		return err
	}

	cat, err := state.loadCatalog(ctx, opts.source)
	if err != nil {
		return err
	}

	recorder := &diag.Recorder{}
	composer, err := state.newComposer(recorder)
	if err != nil {
		return err
	}
	rendered, err := catalog.Render(composer, cat)
	if err != nil {
		return err
	}
	if n := len(recorder.Diagnostics()); n > 0 && opts.strict {
		return fmt.Errorf("render: %d component diagnostic(s) reported", n)
	}

	renderOpts, err := state.renderOptions(composer)
	if err != nil {
		return err
	}
	out, err := renderer.Render(ctx, rendered, renderOpts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("render: write output: %w", err)
	}
	state.log.Info().
		Str("format", renderer.Name()).
		Str("output", opts.output).
		Int("bytes", len(out)).
		Int("sections", len(rendered.Sections)).
		Msg("catalog rendered")
	return nil
}
