package cmd

import (
	"fmt"

	"github.com/rzbill/armkit/pkg/cli/format"
	"github.com/rzbill/armkit/pkg/openenum"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		typeName string
		report   string
		quiet    bool
		jq       string
	)

	cmd := &cobra.Command{
		Use:   "decode [--type NAME] FILE...",
		Short: "Decode and validate ARM payloads",
		Long: `Decode JSON or YAML payloads, validate required fields and print
them back in canonical form. The payload type is taken from --type or
detected from the payload's "type" field.

Values of open enums that this build does not know are reported as
warnings and kept as is.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  # Decode an alert rule and print it as YAML
  armkit decode rule.json -o yaml

  # Validate a list page without printing it
  armkit decode --type incidentList --quiet page1.json

  # Print the title of every incident on a page
  armkit decode page1.json --jq '.value[].properties.title'

  # Decode from stdin
  cat bot.yaml | armkit decode --type healthbot/bot -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := format.NewReporter(cmd.ErrOrStderr(), report)

			failed := 0
			for _, path := range args {
				in, err := a.decodeInput(cmd, path, typeName)
				if err != nil {
					rep.Report(format.FromError(path, in.data, err))
					failed++
					continue
				}

				for _, u := range openenum.Scan(scanTarget(in.value)) {
					rep.Report(format.FromUnknown(path, u))
				}
				if quiet {
					continue
				}
				if err := a.printValue(cmd, in.value, jq); err != nil {
					return err
				}
			}

			if err := rep.Flush(len(args)); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed to decode", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "payload type, e.g. securityinsights/alertRule or alertRule")
	cmd.Flags().StringVar(&report, "report", "text", "diagnostics format (text, json)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "validate only, do not print decoded payloads")
	cmd.Flags().StringVar(&jq, "jq", "", "print the results of a jq expression over each decoded payload")
	return cmd
}

type enveloper interface {
	Envelope() any
}

// scanTarget unwraps catalog list values so their items can be scanned.
func scanTarget(v any) any {
	if e, ok := v.(enveloper); ok {
		return e.Envelope()
	}
	return v
}
