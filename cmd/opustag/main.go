package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/simonhull/opustag"
)

const inPlaceDefaultSuffix = ".otmp"

const longHelp = `opustag views and edits the tags of Ogg Opus audio files.

Without --output or --in-place, the (possibly edited) tags are printed to
standard output and nothing is written. With an output destination, the
comment header is rewritten and every other page of the file is copied byte
for byte; the destination is replaced atomically only after a fully
successful run, so it is never left half-written.`

var exampleUsage = strings.TrimSpace(`
  opustag song.opus
  opustag song.opus -o tagged.opus -a "TITLE=My Song"
  opustag -i -s "ARTIST=Someone" a.opus b.opus
  opustag -S -o out.opus song.opus < tags.txt
`)

func getVersion() string {
	v := opustag.GetVersionInfo()
	if v.GitCommit == "unknown" {
		return v.Version
	}
	return fmt.Sprintf("%s (%s)", v.Version, v.GitCommit)
}

type cliFlags struct {
	output    string
	inPlace   string
	overwrite bool
	deletes   []string
	adds      []string
	sets      []string
	deleteAll bool
	setAll    bool
	cfgPath   string
	jobs      int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var fl cliFlags

	root := &cobra.Command{
		Use:          "opustag [flags] FILE...",
		Short:        "View and edit the tags of Ogg Opus files",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      getVersion(),
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &fl, args)
		},
	}

	bindFlags(root.Flags(), &fl)
	return root
}

func bindFlags(flags *pflag.FlagSet, fl *cliFlags) {
	flags.StringVarP(&fl.output, "output", "o", "", "write the edited stream to `PATH` (\"-\" for stdout)")
	flags.StringVarP(&fl.inPlace, "in-place", "i", "", "overwrite the input file(s), staging through PATH+`SUFFIX`")
	flags.Lookup("in-place").NoOptDefVal = inPlaceDefaultSuffix
	flags.BoolVarP(&fl.overwrite, "overwrite", "y", false, "allow replacing an existing output file")
	flags.StringArrayVarP(&fl.deletes, "delete", "d", nil, "delete comments with the given `FIELD` name")
	flags.StringArrayVarP(&fl.adds, "add", "a", nil, "add a `FIELD=VALUE` comment")
	flags.StringArrayVarP(&fl.sets, "set", "s", nil, "replace a `FIELD=VALUE` comment (delete, then add)")
	flags.BoolVarP(&fl.deleteAll, "delete-all", "D", false, "delete all comments")
	flags.BoolVarP(&fl.setAll, "set-all", "S", false, "replace all comments with FIELD=VALUE lines read from stdin")
	flags.StringVar(&fl.cfgPath, "config", "", "config file `PATH` (default ~/.config/opustag/config.toml)")
	flags.IntVar(&fl.jobs, "jobs", 0, "max files edited concurrently with --in-place (default NumCPU)")
}

func run(cmd *cobra.Command, fl *cliFlags, args []string) error {
	// Config file defaults first, then flag overrides.
	cfg := defaultConfig()
	cfgPath := fl.cfgPath
	if cfgPath == "" {
		cfgPath = defaultConfigPath()
	}
	if cfgPath != "" && fileExists(cfgPath) {
		fc, err := loadFileConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", cfgPath, err)
		}
		applyFileConfig(&cfg, fc, cmd.Flags().Changed)
	}
	if !cmd.Flags().Changed("overwrite") {
		fl.overwrite = cfg.Overwrite
	}
	if !cmd.Flags().Changed("jobs") {
		fl.jobs = cfg.Jobs
	}

	plan, err := buildPlan(fl)
	if err != nil {
		return err
	}

	inPlaceMode := cmd.Flags().Changed("in-place")
	if inPlaceMode && fl.output != "" {
		return fmt.Errorf("--in-place and --output are mutually exclusive")
	}
	if !inPlaceMode && len(args) > 1 {
		return fmt.Errorf("editing multiple files requires --in-place")
	}

	switch {
	case inPlaceMode:
		suffix := fl.inPlace
		if suffix == inPlaceDefaultSuffix && cfg.InPlaceSuffix != "" {
			suffix = cfg.InPlaceSuffix
		}
		if suffix == "" {
			return fmt.Errorf("the in-place suffix cannot be empty")
		}
		opts := []opustag.EditOption{
			opustag.WithOverwrite(),
			opustag.WithInPlaceSuffix(suffix),
			opustag.WithJobs(fl.jobs),
		}
		if len(args) == 1 {
			return opustag.EditFile(args[0], args[0], plan, opts...)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return opustag.EditFiles(ctx, plan, args, opts...)

	case fl.output != "":
		var opts []opustag.EditOption
		if fl.overwrite {
			opts = append(opts, opustag.WithOverwrite())
		}
		return opustag.EditFile(args[0], fl.output, plan, opts...)

	default:
		// Read-only mode: print the edited tags, write nothing.
		var tags *opustag.Tags
		if plan.Empty() {
			tags, err = opustag.ListTags(args[0])
		} else {
			tags, err = listEdited(args[0], plan)
		}
		if err != nil {
			return err
		}
		return printTags(os.Stdout, tags)
	}
}

// listEdited parses the comment header of path and applies plan to it
// in memory.
func listEdited(path string, plan *opustag.EditPlan) (*opustag.Tags, error) {
	if path == "-" {
		return opustag.Process(bufio.NewReader(os.Stdin), nil, plan)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return opustag.Process(bufio.NewReader(f), nil, plan)
}

// buildPlan validates the edit flags and assembles the edit plan.
//
// --set FIELD=VALUE expands to a delete of FIELD followed by an add of
// FIELD=VALUE, and --set-all implies --delete-all. Deletes may not contain
// a '='; adds must.
func buildPlan(fl *cliFlags) (*opustag.EditPlan, error) {
	plan := &opustag.EditPlan{
		DeleteAll: fl.deleteAll || fl.setAll,
		SetAll:    fl.setAll,
	}

	for _, name := range fl.deletes {
		if strings.Contains(name, "=") {
			return nil, fmt.Errorf("invalid field name: %q", name)
		}
		plan.Delete = append(plan.Delete, name)
	}
	for _, comment := range fl.sets {
		if !strings.Contains(comment, "=") {
			return nil, fmt.Errorf("invalid comment: %q", comment)
		}
		plan.Delete = append(plan.Delete, opustag.FieldName(comment))
		plan.Add = append(plan.Add, comment)
	}
	for _, comment := range fl.adds {
		if !strings.Contains(comment, "=") {
			return nil, fmt.Errorf("invalid comment: %q", comment)
		}
		plan.Add = append(plan.Add, comment)
	}

	if fl.setAll {
		replace, err := readTagLines(os.Stdin, func(line string) {
			logger.Warn().Str("line", line).Msg("skipping malformed tag")
		})
		if err != nil {
			return nil, err
		}
		plan.Replace = replace
	}
	return plan, nil
}
