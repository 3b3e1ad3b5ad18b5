package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"guidora"
	"guidora/config"
	"guidora/screen"
)

const (
	defaultConfig = "guidora.yaml"
	fileMode      = 0644
)

var rootCmd = &cobra.Command{
	Use:          "guidora",
	Short:        "Guidora onboarding in the terminal",
	Long:         "Guidora walks through home, phone login, code entry and role selection, then lands on the main page.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runUI,
}

var sampleCmd = &cobra.Command{
	Use:   "sample-config [path]",
	Short: "Write a sample config file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSample,
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "config file, defaults used when not given")
	rootCmd.AddCommand(sampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runUI(cmd *cobra.Command, args []string) (err error) {

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return
	}

	logFile := config.OpenLog(cfg.LogFile, fileMode)
	defer config.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile}
	ctx := lgr.WithFields(context.Background(), "run_id", uuid.NewString())

	lgr.Info(ctx, "guidora starting", "config", cfgPath)

	model := guidora.NewModel(ctx, cfg, screen.NewRenderer(guidora.LeafOptions(cfg)), lgr)
	_, err = tea.NewProgram(model).Run()
	if err != nil {
		lgr.Error(ctx, "program failed", err)
		err = errors.Wrapf(err, "failed to run ui")
		return
	}

	lgr.Info(ctx, "guidora stopped")
	return
}

func runSample(cmd *cobra.Command, args []string) (err error) {

	path := defaultConfig
	if len(args) > 0 {
		path = args[0]
	}

	wrote, err := config.WriteSample(path, fileMode)
	if err != nil {
		return
	}

	if !wrote {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, left as is\n", path)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote sample config to %s\n", path)
	return
}

func loadConfig(path string) (cfg *config.Config, err error) {

	if path == "" {
		cfg = config.Default()
		return
	}

	cfg, err = config.Load(path)
	return
}
