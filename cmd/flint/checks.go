package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"flint/internal/check"
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the registered checks",
	RunE:  runChecks,
}

func init() {
	checksCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type checkInfo struct {
	Name string `json:"name"`
	Doc  string `json:"doc"`
}

func runChecks(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	if format == "json" {
		infos := make([]checkInfo, len(check.All))
		for i, c := range check.All {
			infos[i] = checkInfo{Name: c.Name, Doc: c.Doc}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}
	if format != "pretty" {
		return fmt.Errorf("unknown format: %s", format)
	}

	useColor(cmd, os.Stdout)
	nameColor := color.New(color.FgCyan, color.Bold)
	for _, c := range check.All {
		fmt.Printf("  %s\n      %s\n", nameColor.Sprint(c.Name), c.Doc)
	}
	return nil
}
