// Package main provides the CLI entry point for gstrmerge.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gstrmerge-go/internal/config"
	"github.com/ukaji3/gstrmerge-go/internal/logging"
	"github.com/ukaji3/gstrmerge-go/internal/server"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/aggregate"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/classify"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/models"
)

var (
	mode         string
	logLevel     string
	outputPath   string
	skipRows     int
	headerLevels int
	excluded     []string
	onlySheets   []string
	delimiter    string
	keyLength    int
	addr         string
	maxUploadMB  int64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gstrmerge",
		Short: "Merge GSTR-2B Excel exports into consolidated workbooks",
		Long: `gstrmerge merges the data sheets of several GSTR-2B workbooks into one
workbook, one sheet per sheet type, or one workbook per state code.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&mode, "mode", cfg.Mode, "Grouping mode: flat, sheet, state, state-sheet")
	pf.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	pf.IntVar(&skipRows, "skip-rows", 4, "Title rows above the header")
	pf.IntVar(&headerLevels, "header-levels", 2, "Header rows joined into one column name")
	pf.StringSliceVar(&excluded, "exclude", classify.DefaultExcludedSheets, "Sheet names never merged")
	pf.StringSliceVar(&onlySheets, "only-sheet", nil, "Merge only these sheet names")
	pf.StringVar(&delimiter, "delimiter", "_", "File name delimiter before the state code")
	pf.IntVar(&keyLength, "key-length", 2, "State code length")

	mergeCmd := &cobra.Command{
		Use:   "merge [input.xlsx...]",
		Short: "Merge workbooks given on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMerge,
	}
	mergeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: artifact name, - for stdout)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Accept workbook uploads over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", cfg.Addr, "Listen address")
	serveCmd.Flags().Int64Var(&maxUploadMB, "max-upload-mb", cfg.MaxUploadMB, "Maximum upload size in MB")

	rootCmd.AddCommand(mergeCmd, serveCmd)
	return rootCmd
}

// defaultConfig loads .env, if present, so flag defaults can come from
// GSTRMERGE_* variables.
func defaultConfig() config.Config {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}
	return config.Load()
}

// buildOptions turns the flags into merge options.
func buildOptions() (gstrmerge.Options, error) {
	m, err := aggregate.ParseMode(mode)
	if err != nil {
		return gstrmerge.Options{}, err
	}

	opts := gstrmerge.DefaultOptions()
	opts.Mode = m
	opts.Header.SkipRows = skipRows
	opts.Header.Levels = headerLevels
	opts.ExcludedSheets = excluded
	opts.OnlySheets = onlySheets
	opts.KeyExtractor = classify.DelimitedKey{Delimiter: delimiter, Length: keyLength}
	return opts, nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	toStdout := outputPath == "-"
	logging.Init(toStdout, logging.ParseLevel(logLevel))

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	files := make([]models.InputFile, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		files = append(files, models.InputFile{Name: filepath.Base(path), Data: data})
	}

	res, err := gstrmerge.Merge(files, opts)
	if res != nil {
		for _, line := range res.Log.Lines() {
			fmt.Fprintln(cmd.ErrOrStderr(), line)
		}
	}
	if errors.Is(err, gstrmerge.ErrNoData) {
		return errors.New("no data found to merge; check the files and sheet names")
	}
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	if toStdout {
		_, err := cmd.OutOrStdout().Write(res.Artifact.Data)
		return err
	}

	target := outputPath
	if target == "" {
		target = res.Artifact.Filename
	}
	if err := os.WriteFile(target, res.Artifact.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Info("Wrote merged output", "path", target, "rows", res.Rows, "files", len(files))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	logging.Init(false, logging.ParseLevel(logLevel))

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	srv := server.NewServer(opts, maxUploadMB<<20)
	slog.Info("Listening", "addr", addr, "mode", opts.Mode)
	return http.ListenAndServe(addr, srv)
}
