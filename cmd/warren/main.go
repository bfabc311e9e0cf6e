package main

import (
	"os"

	"github.com/purefictiongames/Warren-sub010/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "warren",
		Short: "Seeded room-graph generator for 3D warren layouts",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var seed, preset, out string

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Run the full pipeline and emit the layout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], seed, preset, out)
		},
	}

	cmd.Flags().StringVarP(&seed, "seed", "s", "", "override the spec seed")
	cmd.Flags().StringVar(&preset, "preset", "", "apply a built-in preset over the spec")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write JSON to a file instead of stdout")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Check a warren spec without generating a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func statsCmd() *cobra.Command {
	var seed, preset string

	cmd := &cobra.Command{
		Use:   "stats [project-path]",
		Short: "Generate a layout and display summary metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(args[0], seed, preset)
		},
	}

	cmd.Flags().StringVarP(&seed, "seed", "s", "", "override the spec seed")
	cmd.Flags().StringVar(&preset, "preset", "", "apply a built-in preset over the spec")
	return cmd
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in configuration presets",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPresets()
		},
	}
}

func viewCmd() *cobra.Command {
	var seed, preset string

	cmd := &cobra.Command{
		Use:   "view [project-path]",
		Short: "Generate a layout and browse its floors in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runView(args[0], seed, preset)
		},
	}

	cmd.Flags().StringVarP(&seed, "seed", "s", "", "override the spec seed")
	cmd.Flags().StringVar(&preset, "preset", "", "apply a built-in preset over the spec")
	return cmd
}

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [url] [dest]",
		Short: "Download a project directory from a remote source",
		Long: `Download a project directory from a remote source.

The URL uses go-getter syntax, so git, http, and archive sources all
work, including subdirectories:

  warren fetch git::https://github.com/example/warrens.git//projects/deep
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			dst := "."
			if len(args) > 1 {
				dst = args[1]
			}
			return runFetch(args[0], dst)
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with live regeneration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
