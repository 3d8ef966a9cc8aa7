package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bytegrep/bytegrep/pkg/config"
	"github.com/bytegrep/bytegrep/pkg/engine"
	"github.com/bytegrep/bytegrep/pkg/prefilter"
	"github.com/bytegrep/bytegrep/pkg/preset"
	"github.com/bytegrep/bytegrep/pkg/render"
	"github.com/bytegrep/bytegrep/pkg/scan"
	"github.com/bytegrep/bytegrep/pkg/types"
)

var (
	flagInvert       bool
	flagIgnoreCase   bool
	flagTrimEOL      bool
	flagOnlyMatching bool
	flagByteOffset   bool
	flagFilesWith    bool
	flagFilesWithout bool
	flagWithFilename bool
	flagNoFilename   bool
	flagUnicode      bool
	flagColor        string
	flagEngine       string
	flagPresetFile   string
	flagPreset       string
	flagJobs         int
	verbose          bool
)

// exitStatus holds the process exit code for runs that finish without a
// fatal error: match/no-match, or the code of the first source read
// failure. Informational commands leave it at zero.
var exitStatus int

var rootCmd = &cobra.Command{
	Use:   "bgrep [flags] <pattern> [file ...]",
	Short: "grep for binary files",
	Long: `bgrep scans binary files (or standard input) for a byte-oriented pattern,
with no line semantics: matches are byte ranges, reported as offsets,
matched byte spans, or matched/unmatched filenames.

Patterns are regular expressions over raw bytes; escapes like \x7f match
single bytes. With no file arguments, or a literal "-", input is read
from standard input.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGrep,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flagInvert, "invert-match", "v", false, "Select the non-matching byte ranges instead")
	f.BoolVarP(&flagIgnoreCase, "ignore-case", "i", false, "Case insensitive matching")
	f.BoolVarP(&flagTrimEOL, "trim-ending-newline", "n", false, "If the input ends with a newline, disregard the last byte")
	f.BoolVarP(&flagOnlyMatching, "only-matching", "o", false, "Print the matched bytes of each match")
	f.BoolVarP(&flagByteOffset, "byte-offset", "b", false, "Print the byte offset of each match")
	f.BoolVarP(&flagFilesWith, "files-with-matches", "l", false, "Print the names of matched files (default output mode)")
	f.BoolVarP(&flagFilesWithout, "files-without-matches", "L", false, "Print the names of non-matched files")
	f.BoolVarP(&flagWithFilename, "with-filename", "H", false, "Prefix output with the file name")
	f.BoolVar(&flagNoFilename, "no-filename", false, "Never prefix output with the file name")
	f.BoolVarP(&flagUnicode, "unicode", "u", false, "Match with UTF-8 rune semantics instead of raw bytes")
	f.StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	f.StringVar(&flagEngine, "engine", "auto", "Match engine: auto, hyperscan")
	f.StringVar(&flagPresetFile, "preset-file", "", "YAML file with named pattern presets")
	f.StringVar(&flagPreset, "preset", "", "Use a named preset instead of the pattern argument")
	f.IntVar(&flagJobs, "jobs", 0, "Concurrent file scans (0 = one per CPU)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose diagnostics on standard error")

	rootCmd.MarkFlagsMutuallyExclusive("files-with-matches", "files-without-matches")
	rootCmd.MarkFlagsMutuallyExclusive("with-filename", "no-filename")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runGrep(cmd *cobra.Command, args []string) error {
	applyConfigDefaults(cmd)

	pattern, files, err := resolvePattern(args)
	if err != nil {
		return err
	}

	flags := engine.Flags{
		CaseInsensitive: flagIgnoreCase,
		Unicode:         flagUnicode,
	}

	m, err := compileEngine(pattern, flags)
	if err != nil {
		return err
	}
	defer m.Close()

	pf := prefilter.FromPattern(pattern, flagIgnoreCase, flagUnicode)

	sources := scan.Resolve(files)
	scanner := scan.New(m, pf, scan.Options{
		Invert:            flagInvert,
		TrimEndingNewline: flagTrimEOL,
		Jobs:              flagJobs,
	})

	results := scanner.ScanAll(context.Background(), sources)

	var ok []*types.SourceResult
	var readErr error
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "bgrep: %v\n", res.Err)
			if readErr == nil {
				readErr = res.Err
			}
			continue
		}
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "bgrep: %s: %d bytes, %d ranges\n",
				res.Source.Name, len(res.Source.Data), len(res.Source.Ranges))
		}
		ok = append(ok, res.Source)
	}

	mode := types.Mode{
		ListMatched:   flagFilesWith,
		ListUnmatched: flagFilesWithout,
		ShowOffset:    flagByteOffset,
		ShowBytes:     flagOnlyMatching,
	}
	policy := resolveNamePolicy()

	out := cmd.OutOrStdout()
	styles := render.NewStyles(render.ColorEnabled(flagColor, out))
	renderer := render.New(out, mode, policy.ShowNames(len(sources)), styles)

	matched, err := renderer.Render(ok)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	switch {
	case readErr != nil:
		// Unreadable input wins over the match outcome.
		exitStatus = exitCodeFor(readErr)
	case matched:
		exitStatus = exitMatch
	default:
		exitStatus = exitNoMatch
	}

	return nil
}

// applyConfigDefaults loads the user config file and uses it for every
// flag the command line did not set.
func applyConfigDefaults(cmd *cobra.Command) {
	cfg, err := config.Load()
	if err != nil {
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "bgrep: %v\n", err)
		}
		cfg = config.Default()
	}

	f := cmd.Flags()
	if !f.Changed("color") {
		flagColor = cfg.Color
	}
	if !f.Changed("trim-ending-newline") {
		flagTrimEOL = flagTrimEOL || cfg.TrimEndingNewline
	}
	if !f.Changed("unicode") {
		flagUnicode = flagUnicode || cfg.Unicode
	}
	if !f.Changed("jobs") && cfg.Jobs > 0 {
		flagJobs = cfg.Jobs
	}
	if !f.Changed("preset-file") && cfg.PresetFile != "" {
		flagPresetFile = cfg.PresetFile
	}
}

// resolvePattern determines the pattern string and the file arguments.
// With --preset the positional pattern argument is not consumed.
func resolvePattern(args []string) (string, []string, error) {
	if flagPreset == "" {
		if len(args) == 0 {
			return "", nil, fmt.Errorf("missing <pattern> argument")
		}
		return args[0], args[1:], nil
	}

	loader := preset.NewLoader()
	var (
		presets []preset.Preset
		err     error
	)
	if flagPresetFile != "" {
		presets, err = loader.LoadFile(flagPresetFile)
	} else {
		presets, err = loader.LoadBuiltin()
	}
	if err != nil {
		return "", nil, err
	}

	p, err := preset.Find(presets, flagPreset)
	if err != nil {
		return "", nil, err
	}
	return p.Pattern, args, nil
}

func compileEngine(pattern string, flags engine.Flags) (engine.Matcher, error) {
	switch flagEngine {
	case "", "auto":
		return engine.Compile(pattern, flags)
	case "hyperscan":
		return engine.NewHyperscan(pattern, flags)
	default:
		return nil, fmt.Errorf("unknown engine: %s", flagEngine)
	}
}

func resolveNamePolicy() types.NamePolicy {
	switch {
	case flagWithFilename:
		return types.NameShow
	case flagNoFilename:
		return types.NameSuppress
	default:
		return types.NameAuto
	}
}
