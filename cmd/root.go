// Package cmd is for command line interactions with hsp-to-bed
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/jjtimmons/hspbed/config"
	"github.com/jjtimmons/hspbed/internal/convert"
	"github.com/jjtimmons/hspbed/internal/stream"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is the release of hsp-to-bed
const version = "1.0.0"

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// RootCmd represents the base command when called without any subcommands.
	RootCmd = newRootCmd()
)

// Execute runs the root command. This is called by main.main().
// Any error is logged and exits the process with a non-zero status.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		stderr.Fatalf("%s %v", color.RedString("error:"), err)
	}
}

// newRootCmd creates the hsp-to-bed command and binds its flags to a fresh viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "hsp-to-bed",
		Short: "Convert HSPs to BED format",
		Long: `Convert tabular high-scoring pairs (HSPs), from e.g. 'blastn -outfmt 7',
to BED intervals.

Each HSP becomes one BED record. By default the interval is the target span and
the query, its span, strand, and the alignment statistics are joined with ':'
into the name column. With --reverse the query span is the interval instead.

Lines starting with '#' are skipped. Any other line that isn't 12 tab separated
fields stops the conversion with an error.

Settings can also be given in a settings file (--settings) or through
HSPBED_* environment variables, eg HSPBED_DISPLAY_NAME.`,
		Example: `  blastn -query HLA-A.fa -db genome -outfmt 7 | hsp-to-bed -d HLA-A -t > HLA-A.bed
  hsp-to-bed -i hits.tsv.gz -o hits.bed.gz --reverse`,
		Version:                    version,
		Args:                       cobra.NoArgs,
		SuggestionsMinimumDistance: 2,
		SilenceErrors:              true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true // past flag parsing, errors are about the data

			if showAbout, _ := cmd.Flags().GetBool("about"); showAbout {
				return writeAbout(cmd.OutOrStdout())
			}

			settings, _ := cmd.Flags().GetString("settings")
			c, err := config.New(v, settings)
			if err != nil {
				return err
			}
			return convertFiles(c, log.New(cmd.ErrOrStderr(), "", 0))
		},
	}

	cmd.Flags().StringP("display-name", "d", "", "query display name")
	cmd.Flags().StringP("hsp-file", "i", "", "input HSP file, from e.g. blastn -outfmt 7, default stdin")
	cmd.Flags().StringP("bed-file", "o", "", "output BED file, default stdout (.gz and .zst are compressed)")
	cmd.Flags().BoolP("reverse", "r", false, "reverse query and target in BED file")
	cmd.Flags().BoolP("transform-evalue", "t", false, "transform e-value to BED score [0..1000]")
	cmd.Flags().BoolP("about", "a", false, "display about message")
	cmd.Flags().StringP("settings", "s", "", "settings file (yaml, toml or json)")
	cmd.Flags().BoolP("verbose", "v", false, "log a summary of the conversion to stderr")

	v.BindPFlags(cmd.Flags())

	cmd.AddCommand(newDocsCmd())
	return cmd
}

// convertFiles opens the input and output streams, converts, and releases both.
func convertFiles(c *config.Config, logger *log.Logger) error {
	in, err := stream.Open(c.HSPFile)
	if err != nil {
		return err
	}
	defer release(in, c.HSPFile, "stdin", logger)

	out, err := stream.Create(c.BEDFile)
	if err != nil {
		return err
	}
	defer release(out, c.BEDFile, "stdout", logger)

	stats, err := convert.Run(in, out, options(c))

	// records written before a failure stay written
	if ferr := out.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("failed to write %s: %w", stream.Name(c.BEDFile, "stdout"), ferr)
	}

	if c.Verbose {
		logger.Println(stats)
	}
	return err
}

// options maps settings onto the conversion's options.
func options(c *config.Config) convert.Options {
	opts := convert.Options{
		Orientation:     convert.Forward,
		TransformEvalue: c.TransformEvalue,
	}
	if c.DisplayNameSet {
		name := c.DisplayName
		opts.DisplayName = &name
	}
	if c.Reverse {
		opts.Orientation = convert.Reverse
	}
	return opts
}

// release closes a stream. Failures are logged, never returned, so they
// can't hide the error that ended the run.
func release(c io.Closer, path, std string, logger *log.Logger) {
	if err := c.Close(); err != nil {
		logger.Printf("%s failed to close %s: %v", color.YellowString("warning:"), stream.Name(path, std), err)
	}
}
