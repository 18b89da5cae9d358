package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhr3/skipscan/bm"
)

// scanOpts holds the flag values of one invocation.
type scanOpts struct {
	patterns []string
	text     string
	hasText  bool
	quiet    bool
	context  int
	hex      bool
}

// input is one fully loaded text to search.
type input struct {
	name string
	data []byte
}

func newRootCmd() *cobra.Command {
	var opts scanOpts

	c := &cobra.Command{
		Use:   "skipscan [flags] PATTERN [FILE...]",
		Short: "Find the first offset of a byte pattern",
		Long: "Reports the zero-based byte offset of the first occurrence of each pattern.\n" +
			"Inputs are read whole into memory. With no FILE, or when FILE is -, reads stdin.\n" +
			"Exit status is 0 if any pattern matched, 1 if none did, 2 on error.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasText = cmd.Flags().Changed("string")
			return runScan(cmd, opts, args)
		},
	}

	f := c.Flags()
	f.StringArrayVarP(&opts.patterns, "pattern", "e", nil, "pattern to search for (repeatable)")
	f.StringVarP(&opts.text, "string", "s", "", "search this literal text instead of files")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "print nothing, only set the exit status")
	f.IntVarP(&opts.context, "context", "C", 0, "print up to `N` bytes around each match")
	f.BoolVar(&opts.hex, "hex", false, "always print context hex-encoded")

	return c
}

var rootCmd = newRootCmd()

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && ExitCode(err) < 0 {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "skipscan: %v\n", err)
		return exitError{code: 2}
	}
	return err
}

func runScan(cmd *cobra.Command, opts scanOpts, args []string) error {
	patterns := opts.patterns
	if len(patterns) == 0 {
		if len(args) == 0 {
			return errors.New("no pattern given")
		}
		patterns, args = args[:1], args[1:]
	}
	if opts.context < 0 {
		return fmt.Errorf("invalid context length %d", opts.context)
	}

	var inputs []input
	withName := false
	failed := false
	if opts.hasText {
		if len(args) > 0 {
			return errors.New("--string cannot be combined with FILE arguments")
		}
		inputs = append(inputs, input{name: "(string)", data: []byte(opts.text)})
	} else {
		if len(args) == 0 {
			args = []string{"-"}
		}
		// decided by the arguments, not by which reads succeed
		withName = len(args) > 1
		for _, name := range args {
			data, err := readInput(cmd.InOrStdin(), name)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipscan: %v\n", err)
				failed = true
				continue
			}
			inputs = append(inputs, input{name: name, data: data})
		}
	}

	p := &printer{
		w:        cmd.OutOrStdout(),
		withName: withName,
		context:  opts.context,
		hex:      opts.hex,
		quiet:    opts.quiet,
	}

	found := false
	for _, in := range inputs {
		for _, r := range scanInput(in, patterns) {
			if r.offset < 0 {
				continue
			}
			found = true
			p.print(in, r)
		}
	}

	switch {
	case failed:
		return exitError{code: 2}
	case !found:
		return exitError{code: 1}
	}
	return nil
}

// result is the outcome of one pattern against one input.
type result struct {
	pattern string
	offset  int
}

// scanInput searches in for every pattern with a single Matcher,
// re-targeting it for each pattern after the first.
func scanInput(in input, patterns []string) []result {
	if len(patterns) == 0 {
		return nil
	}
	res := make([]result, 0, len(patterns))
	m := bm.New(in.data, []byte(patterns[0]))
	res = append(res, result{pattern: patterns[0], offset: m.Search()})
	for _, pat := range patterns[1:] {
		res = append(res, result{pattern: pat, offset: m.SearchForString(pat)})
	}
	return res
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
