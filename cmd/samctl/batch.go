package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopherlabs/suffixautomaton/internal/batch"
	"github.com/gopherlabs/suffixautomaton/internal/config"
)

func newBatchCmd(opts *cliOptions) *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run the positions.in test harness and write a CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedInput, resolvedOutput, err := resolveBatchPaths(opts, inputPath, outputPath)
			if err != nil {
				return err
			}
			return runBatch(cmd, opts, resolvedInput, resolvedOutput)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", `path to the positions.in record file (default "positions.in", or the config file's batch_input_path)`)
	cmd.Flags().StringVar(&outputPath, "output", "", `path to write the CSV report (default "positionsresults.csv", or the config file's batch_output_path)`)
	return cmd
}

// resolveBatchPaths picks the --input/--output paths to use: an
// explicit flag wins, then the config file's batch_input_path /
// batch_output_path, then the hardcoded default.
func resolveBatchPaths(opts *cliOptions, inputPath, outputPath string) (string, string, error) {
	cfg := config.Config{}
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return "", "", err
		}
		cfg = loaded
	}

	if inputPath == "" {
		inputPath = cfg.BatchInputPath
	}
	if inputPath == "" {
		inputPath = "positions.in"
	}
	if outputPath == "" {
		outputPath = cfg.BatchOutputPath
	}
	if outputPath == "" {
		outputPath = "positionsresults.csv"
	}
	return inputPath, outputPath, nil
}

func runBatch(cmd *cobra.Command, opts *cliOptions, inputPath, outputPath string) error {
	automatonOpts, _, err := opts.resolve()
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("samctl batch: open %s: %w", inputPath, err)
	}
	defer in.Close()

	records, err := batch.ParseFile(in)
	if err != nil {
		return fmt.Errorf("samctl batch: parse %s: %w", inputPath, err)
	}

	for _, rec := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "Constructing an automaton of size %d for %s...\n", len(rec.Body), rec.Title)
	}

	results := batch.Run(records, automatonOpts...)
	for _, r := range results {
		status := "PASSED"
		if !r.Passed {
			status = "FAILED"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: searching for %q in %s found %d of %d positions\n",
			status, r.SearchStr, r.SourceTitle, r.Found, r.Expected)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("samctl batch: create %s: %w", outputPath, err)
	}
	defer out.Close()

	return batch.WriteCSV(out, results)
}
