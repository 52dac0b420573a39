// Package cmd provides the root command and CLI setup for litsplice.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/mouse-blink/litsplice/internal/adapter"
	"github.com/mouse-blink/litsplice/internal/controller"
	"github.com/mouse-blink/litsplice/internal/ctxlog"
	"github.com/mouse-blink/litsplice/internal/domain"
	m "github.com/mouse-blink/litsplice/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var configLoader adapter.ConfigLoader
var embedder domain.Embedder
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	configLoader = adapter.NewLocalConfigLoader()
	embedder = domain.NewEmbedder(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, ui, embedder)
}

var configFlag string
var assetFlag string
var hostFlag string
var startMarkerFlag string
var endMarkerFlag string
var encodingFlag string
var declarationFlag string
var keepStartMarkerLineFlag bool
var parallelFlag int
var logLevelFlag string
var logFormatFlag string

// targetFlagNames are the flags describing a single target; they cannot be
// combined with --config.
var targetFlagNames = []string{"asset", "host", "start-marker", "end-marker", "encoding", "declaration", "keep-start-marker-line"}

const rootLongDescription = `litsplice embeds a text asset into a generated C source file as a string
literal, replacing the region between two markers and leaving the rest of
the file byte-for-byte unchanged.

Without flags it embeds ./chess_app.js into ./web_server_task.c between
  static const char chess_app_js_content[] =
and
  static esp_err_t http_get_chess_js_handler(httpd_req_t *req)

Use --config to embed several targets declared in a YAML or HCL file.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "litsplice",
		Short:             "Embed text assets into C sources as string literals",
		Long:              rootLongDescription,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogger,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := resolveTargets(cmd)
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{Targets: targets, Threads: parallelFlag})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "YAML or HCL file declaring the targets to embed")
	flags.StringVar(&assetFlag, "asset", string(m.DefaultAssetPath), "asset file to embed")
	flags.StringVar(&hostFlag, "host", string(m.DefaultHostPath), "host source file to rewrite")
	flags.StringVar(&startMarkerFlag, "start-marker", m.DefaultStartMarker, "text marking the start of the embedded region")
	flags.StringVar(&endMarkerFlag, "end-marker", m.DefaultEndMarker, "text marking the end of the embedded region")
	flags.StringVar(&encodingFlag, "encoding", m.DefaultEncoding, "IANA character set of the asset")
	flags.StringVar(&declarationFlag, "declaration", "", "line emitted after the header comment, e.g. the array declaration")
	flags.BoolVar(&keepStartMarkerLineFlag, "keep-start-marker-line", true, "keep the start marker line and replace only what follows it")
	flags.IntVarP(&parallelFlag, "parallel", "p", 1, "number of host files processed in parallel")
	flags.StringVar(&logLevelFlag, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&logFormatFlag, "log-format", "text", "log format: text or json")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	logger := ctxlog.New(logLevelFlag, logFormatFlag, cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	return nil
}

// resolveTargets returns the targets from --config, or the single target
// described by the target flags.
func resolveTargets(cmd *cobra.Command) ([]m.Target, error) {
	if configFlag == "" {
		return []m.Target{targetFromFlags()}, nil
	}

	for _, name := range targetFlagNames {
		if cmd.Flags().Changed(name) {
			return nil, fmt.Errorf("--%s cannot be combined with --config", name)
		}
	}

	targets, err := configLoader.Load(m.Path(configFlag))
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidTarget, err)
	}

	return targets, nil
}

func targetFromFlags() m.Target {
	return m.Target{
		Asset:               m.Path(assetFlag),
		Host:                m.Path(hostFlag),
		StartMarker:         startMarkerFlag,
		EndMarker:           endMarkerFlag,
		Encoding:            encodingFlag,
		KeepStartMarkerLine: keepStartMarkerLineFlag,
		Declaration:         declarationFlag,
		Indent:              m.DefaultIndent,
	}.WithDefaults()
}
