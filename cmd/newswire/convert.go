package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"NewswireNotifier/internal/domain"
)

type convertOutput struct {
	Bulletin string                      `json:"bulletin"`
	Status   domain.Outcome              `json:"status"`
	Payload  *domain.NotificationPayload `json:"payload,omitempty"`
}

var convertCmd = &cobra.Command{
	Use:   "convert [file|glob ...]",
	Short: "Convert bulletins to notification payloads",
	Long: `Convert runs every matched bulletin through the pipeline and prints one JSON
object per bulletin. With no arguments a single bulletin is read from stdin.

Examples:
  newswire convert bulletin.xml
  newswire convert 'feeds/**/*.xml'
  cat bulletin.xml | newswire convert`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	application, _ := newApplication()

	reports, procErr := application.Convert(cmd.Context(), args, cmd.InOrStdin())

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	for _, report := range reports {
		out := convertOutput{Bulletin: report.Name, Status: report.Outcome}
		if len(report.Result.Payload.Attachments) > 0 {
			out.Payload = &report.Result.Payload
		}
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return procErr
}
