package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lintfold/internal/config"
	"lintfold/internal/diag"
	"lintfold/internal/output"
	"lintfold/internal/parse"
	"lintfold/internal/policy"
)

// Shared check flags
var (
	flagFormat  string
	flagOut     string
	flagFailOn  string
	flagPolicy  string
	flagCodes   string
	flagNoColor bool
	flagJobs    int
)

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown, sarif)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Fail on severity threshold (none, info, warning, error)")
	cmd.Flags().StringVar(&flagPolicy, "policy", "", "Policy file path (TOML)")
	cmd.Flags().StringVar(&flagCodes, "location-only-codes", "", "Location-only continuation codes (comma-separated)")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored text output")
	cmd.Flags().IntVar(&flagJobs, "jobs", 4, "Maximum number of files parsed concurrently")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagFailOn != "" {
		m["failOn"] = flagFailOn
	}
	if flagPolicy != "" {
		m["policyFile"] = flagPolicy
	}
	if flagCodes != "" {
		m["locationOnlyCodes"] = flagCodes
	}
	if flagNoColor {
		m["noColor"] = "true"
	}
	return m
}

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Parse captured lint output and render a report",
	Long:  "Parse one or more captured output files (or stdin when no files are given) into diagnostic records and render them in the configured format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		runCheck(args, cfg)
		return nil
	},
}

// input is one captured blob to parse.
type input struct {
	name string
	blob string
}

func runCheck(paths []string, cfg config.Config) {
	if cfg.NoColor {
		color.NoColor = true
	}

	pol, err := policy.Load(cfg.PolicyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	inputs, err := readInputs(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	opts := parse.Options{LocationOnlyCodes: cfg.LocationOnlyCodes}
	if pol != nil && len(pol.LocationOnlyCodes) > 0 {
		opts.LocationOnlyCodes = pol.LocationOnlyCodes
	}

	reports, err := parseAll(inputs, opts, pol, flagJobs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var mle *parse.MalformedLineError
		if errors.As(err, &mle) {
			exitCode = ExitParseError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	if err := writeReports(reports, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	// Check fail-on threshold
	if cfg.FailOn != "none" && cfg.FailOn != "" {
		for _, report := range reports {
			for _, r := range report.Records {
				if diag.MeetsThreshold(r.Severity, cfg.FailOn) {
					exitCode = ExitFindings
					return
				}
			}
		}
	}
}

func readInputs(paths []string) ([]input, error) {
	if len(paths) == 0 {
		blob, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []input{{name: "stdin", blob: string(blob)}}, nil
	}
	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		inputs = append(inputs, input{name: path, blob: string(blob)})
	}
	return inputs, nil
}

// parseAll parses inputs concurrently, one merge per goroutine. Line order
// inside a single blob is load-bearing, so parallelism only exists across
// inputs; reports come back in input order.
func parseAll(inputs []input, opts parse.Options, pol *policy.Policy, jobs int) ([]*diag.Report, error) {
	if jobs < 1 {
		jobs = 1
	}
	reports := make([]*diag.Report, len(inputs))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			records, err := parse.Parse(in.blob, opts)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", in.name, err)
			}
			records = pol.Apply(records)
			reports[i] = &diag.Report{
				Tool:    "lintfold",
				Version: version,
				Source:  in.name,
				Summary: diag.ComputeSummary(records),
				Records: records,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func writeReports(reports []*diag.Report, format, outPath string) error {
	writer, err := output.GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	for _, report := range reports {
		if err := writer.Write(w, report); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	addCheckFlags(checkCmd)
}
