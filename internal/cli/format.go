package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spool-dev/spool/internal/api"
	"github.com/spool-dev/spool/internal/metrics"
)

var (
	formatFile        string
	formatImages      []string
	formatTone        string
	formatNumbering   bool
	formatNoNumbering bool
)

var formatCmd = &cobra.Command{
	Use:   "format [content]",
	Short: "Compose content into a thread",
	Long: `Compose long-form content into an ordered thread of posts.

Content is read from the argument, from --file, or from stdin when piped.
Each post stays within the platform character limit, and image
attachments are distributed across the thread in order.

Examples:
  spool format "Your long announcement text..."
  spool format --file draft.txt --tone casual
  cat draft.txt | spool format --numbering
  spool format --image diagram.png --image chart.png "Release notes..."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().StringVarP(&formatFile, "file", "f", "", "Read content from a file")
	formatCmd.Flags().StringSliceVarP(&formatImages, "image", "i", nil, "Image descriptor to attach (repeatable)")
	formatCmd.Flags().StringVarP(&formatTone, "tone", "t", "", "Tone for suggestions (professional, casual, educational, conversational)")
	formatCmd.Flags().BoolVar(&formatNumbering, "numbering", true, "Prefix posts with position markers (1/n)")
	formatCmd.Flags().BoolVar(&formatNoNumbering, "no-numbering", false, "Leave posts unnumbered")
	formatCmd.MarkFlagsMutuallyExclusive("numbering", "no-numbering")
}

func runFormat(cmd *cobra.Command, args []string) error {
	content, err := resolveContent(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" && len(formatImages) == 0 {
		return ErrNothingToFormat()
	}

	client, err := NewClientFromFlags()
	if err != nil {
		return err
	}

	resp, err := client.Format(api.FormatRequest{
		Content:          content,
		Images:           formatImages,
		Tone:             formatTone,
		IncludeNumbering: formatNumbering && !formatNoNumbering,
	})
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return JSON(resp)
	}

	hardLimit := 0
	if limits, err := client.Limits(); err == nil {
		hardLimit = limits.HardLimit
	} else {
		Warn("Could not fetch platform limits: %v", err)
	}

	printThread(DefaultOutput, resp, metrics.FromResponse(resp, hardLimit))
	return nil
}

// printThread writes the human-readable rendition of a composed thread.
func printThread(o *OutputFormatter, resp *api.FormatResponse, m *metrics.ThreadMetrics) {
	fmt.Fprintln(o.out, resp.RenderedOutput)

	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(o.out)
		fmt.Fprintln(o.out, "Suggestions:")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(o.out, "  - %s\n", s)
		}
	}

	fmt.Fprintln(o.out)
	if IsVerbose() {
		fmt.Fprint(o.out, metrics.FormatMetrics(m))
	} else {
		fmt.Fprintln(o.out, metrics.FormatMetricsSummary(m))
	}
}

// resolveContent picks the content source: the argument, then --file, then
// stdin when it is piped.
func resolveContent(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if formatFile != "" {
		data, err := os.ReadFile(formatFile)
		if err != nil {
			return "", ErrFileUnreadable(formatFile, err)
		}
		return string(data), nil
	}

	fi, err := os.Stdin.Stat()
	if err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", nil
}
