package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/lokeshsukhwal/Dasher/internal/config"
	"github.com/lokeshsukhwal/Dasher/internal/export"
	"github.com/lokeshsukhwal/Dasher/internal/hours"
	"github.com/lokeshsukhwal/Dasher/internal/report"
)

const stdinPath = "-"

var compareCmd = LeafCommand{
	Use:   "compare",
	Short: "Compare stored hours against a listing",
	Long: `Compare the hours on record (--old) against the hours found on a listing
(--new) and print the day-by-day result with paste-ready remarks.

Either file may be "-" to read from stdin. When a file is omitted in a
terminal, the hours are prompted for instead.`,
	Args: cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "old", Usage: "file with the hours on record (\"-\" for stdin)"},
		{Name: "new", Usage: "file with the listing hours (\"-\" for stdin)"},
		{Name: "week-start", Usage: "first day of the week in output"},
		{Name: "old-format", Usage: "old hours format: auto, compact or freetext"},
		{Name: "new-format", Usage: "new hours format: auto, compact or freetext"},
		{Name: "export", Usage: "export format: md, html or pdf"},
		{Name: "output", Usage: "export file path (default hours-comparison.<format>)"},
	},
	IntFlags: []IntFlag{
		{Name: "tolerance", Usage: "minutes of difference ignored when comparing", Default: config.DefaultConfig().Compare.ToleranceMinutes},
	},
	BoolFlags: []BoolFlag{
		{Name: "json", Usage: "print the full result as JSON"},
		{Name: "quick", Usage: "print only the quick remark"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		tty := interactive(in, cmd.OutOrStdout())
		return runCompare(cmd, homeDir, in, tty, NewPromptKit())
	},
}.Build()

// compareFlags holds the raw flag values of a compare run.
type compareFlags struct {
	oldPath, newPath     string
	weekStart            string
	oldFormat, newFormat string
	exportFormat, output string
	tolerance            int
	toleranceSet         bool
	asJSON, quick        bool
}

func readCompareFlags(cmd *cobra.Command) compareFlags {
	var f compareFlags
	f.oldPath, _ = cmd.Flags().GetString("old")
	f.newPath, _ = cmd.Flags().GetString("new")
	f.weekStart, _ = cmd.Flags().GetString("week-start")
	f.oldFormat, _ = cmd.Flags().GetString("old-format")
	f.newFormat, _ = cmd.Flags().GetString("new-format")
	f.exportFormat, _ = cmd.Flags().GetString("export")
	f.output, _ = cmd.Flags().GetString("output")
	f.tolerance, _ = cmd.Flags().GetInt("tolerance")
	f.toleranceSet = cmd.Flags().Changed("tolerance")
	f.asJSON, _ = cmd.Flags().GetBool("json")
	f.quick, _ = cmd.Flags().GetBool("quick")
	return f
}

func runCompare(cmd *cobra.Command, homeDir string, stdin io.Reader, tty bool, kit PromptKit) error {
	f := readCompareFlags(cmd)

	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}
	opts, err := resolveOptions(cfg.ReportOptions(), f)
	if err != nil {
		return err
	}

	var format export.Format
	if f.exportFormat != "" {
		if format, err = export.ParseFormat(f.exportFormat); err != nil {
			return err
		}
	}

	if f.oldPath == stdinPath && f.newPath == stdinPath {
		return errors.New("--old and --new cannot both read from stdin")
	}

	oldText, err := readHours(f.oldPath, "old", stdin, tty, kit,
		"Hours on record", "Monday: 9:00 AM - 10:00 PM")
	if err != nil {
		return err
	}
	newText, err := readHours(f.newPath, "new", stdin, tty, kit,
		"Hours on the listing", "Monday\n9 AM–10 PM")
	if err != nil {
		return err
	}
	if f.newPath == "" && f.newFormat == "" && tty && kit.Select != nil {
		if opts.NewDialect, err = selectDialect(kit.Select); err != nil {
			return err
		}
	}

	if err := report.Validate(oldText, newText); err != nil {
		return err
	}
	res := report.Build(oldText, newText, opts)

	w := cmd.OutOrStdout()
	switch {
	case format != "":
		path := f.output
		if path == "" {
			path = format.DefaultPath()
		}
		if err := export.Write(res, format, path); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("exported to %s", Primary(path))))
	case f.asJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, _ = fmt.Fprintf(w, "%s\n", data)
	case f.quick:
		_, _ = fmt.Fprintf(w, "%s\n", res.QuickRemark)
	default:
		printResult(w, res)
	}
	return nil
}

// resolveOptions applies explicit flags over the configured options.
func resolveOptions(opts report.Options, f compareFlags) (report.Options, error) {
	if f.toleranceSet {
		if f.tolerance < 0 || f.tolerance > config.MaxToleranceMinutes {
			return opts, fmt.Errorf("--tolerance must be between 0 and %d", config.MaxToleranceMinutes)
		}
		opts.ToleranceMinutes = f.tolerance
	}
	if f.weekStart != "" {
		day, ok := hours.ParseDay(f.weekStart)
		if !ok {
			return opts, fmt.Errorf("--week-start: unknown day %q", f.weekStart)
		}
		opts.WeekStart = day
	}
	if f.oldFormat != "" {
		d, err := hours.ParseDialect(f.oldFormat)
		if err != nil {
			return opts, fmt.Errorf("--old-format: %w", err)
		}
		opts.OldDialect = d
	}
	if f.newFormat != "" {
		d, err := hours.ParseDialect(f.newFormat)
		if err != nil {
			return opts, fmt.Errorf("--new-format: %w", err)
		}
		opts.NewDialect = d
	}
	return opts, nil
}

// readHours loads one side of the comparison from a file, stdin or a prompt.
func readHours(path, side string, stdin io.Reader, tty bool, kit PromptKit, title, placeholder string) (string, error) {
	switch path {
	case "":
		if !tty || kit.Text == nil {
			return "", fmt.Errorf("--%s is required when not running in a terminal", side)
		}
		return kit.Text(title, placeholder)
	case stdinPath:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading %s hours from stdin: %w", side, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s hours: %w", side, err)
	}
	return string(data), nil
}

var dialectChoices = []hours.Dialect{hours.Detect, hours.FreeText, hours.Compact}

func selectDialect(sel SelectFunc) (hours.Dialect, error) {
	labels := make([]string, len(dialectChoices))
	for i, d := range dialectChoices {
		labels[i] = strings.ToUpper(d.String()[:1]) + d.String()[1:]
	}
	idx, err := sel("Listing format", labels)
	if err != nil {
		return hours.Detect, err
	}
	if idx < 0 || idx >= len(dialectChoices) {
		return hours.Detect, fmt.Errorf("invalid format selection %d", idx)
	}
	return dialectChoices[idx], nil
}
