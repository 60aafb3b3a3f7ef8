package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/backtrack/pkg/matcher"
	"github.com/praetorian-inc/backtrack/pkg/types"
)

var enginesFormat string

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List regex engines",
	Long:  "Display every regex engine, whether this build includes it, and whether it backtracks",
	Args:  cobra.NoArgs,
	RunE:  runEngines,
}

func init() {
	enginesCmd.Flags().StringVar(&enginesFormat, "format", "table", "Output format: table, json")
}

type engineInfo struct {
	Name       types.Engine `json:"name"`
	Available  bool         `json:"available"`
	Backtracks bool         `json:"backtracks"`
}

func listEngines() []engineInfo {
	infos := make([]engineInfo, 0, len(types.Engines))
	for _, e := range types.Engines {
		infos = append(infos, engineInfo{
			Name:       e,
			Available:  matcher.Available(e),
			Backtracks: e.Backtracks(),
		})
	}
	return infos
}

func runEngines(cmd *cobra.Command, args []string) error {
	infos := listEngines()

	switch enginesFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ENGINE\tAVAILABLE\tBACKTRACKS")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, yesNo(info.Available), yesNo(info.Backtracks))
		}
		return w.Flush()
	default:
		return errors.Errorf("unknown output format: %s", enginesFormat)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
