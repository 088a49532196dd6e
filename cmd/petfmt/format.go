package main

import (
	"encoding/json"
	"fmt"

	"peticiona-backend/config"
	"peticiona-backend/formatter"
	"peticiona-backend/models"
	"peticiona-backend/renderer"

	"github.com/spf13/cobra"
)

type formatOptions struct {
	settingsPath string
	output       string
	numbering    string
	width        int
	style        string
}

func newFormatCmd() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format [file|-]",
		Short: "Format a petition into styled blocks",
		Long: `Reads a raw petition and prints the formatted result.

Output formats:
  json      blocks with their roles and style attributes
  html      the preview fragment served by the API
  markdown  plain Markdown with bold and italic markers
  terminal  Markdown rendered for the terminal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.settingsPath, "settings", "", "YAML style settings file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "output format: json, html, markdown or terminal")
	cmd.Flags().StringVar(&opts.numbering, "numbering", "", "chapter numbering: none, integer or unit (overrides --settings)")
	cmd.Flags().IntVar(&opts.width, "width", 100, "word wrap width for terminal output")
	cmd.Flags().StringVar(&opts.style, "style", "", "glamour style for terminal output (default: auto)")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, opts *formatOptions) error {
	settings, err := resolveSettings(opts)
	if err != nil {
		return err
	}

	content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	blocks := formatter.Format(content, settings)
	out := cmd.OutOrStdout()

	switch opts.output {
	case "json":
		data, err := json.MarshalIndent(blocks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode blocks: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "html":
		rendered, err := renderer.RenderHTML(blocks, settings)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)
	case "markdown":
		fmt.Fprintln(out, renderer.RenderMarkdown(blocks))
	case "terminal":
		rendered, err := renderer.RenderTerminal(blocks, opts.width, opts.style)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}
	return nil
}

func resolveSettings(opts *formatOptions) (models.StyleSettings, error) {
	settings := models.DefaultStyleSettings()
	if opts.settingsPath != "" {
		loaded, err := config.LoadStyleSettings(opts.settingsPath)
		if err != nil {
			return models.StyleSettings{}, err
		}
		settings = loaded
	}

	if opts.numbering != "" {
		numbering := models.ChapterNumbering(opts.numbering)
		if !numbering.Valid() {
			return models.StyleSettings{}, fmt.Errorf("unknown numbering %q", opts.numbering)
		}
		settings.ChapterNumbering = numbering
	}
	return settings, nil
}
