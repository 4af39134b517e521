package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reflectCMD = &cobra.Command{
	Use:   "reflect",
	Short: "reflect the automapped tables and report their columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connect(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer a.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TABLE\tCOLUMNS\tMOE PAIRS\tREFLECTED")
		for _, t := range a.registry.Tables() {
			fmt.Fprintf(w, "%s\t%d\t%d\t%t\n", t.FullName(), len(t.Columns), len(t.MoeColumns()), t.Reflected)
		}
		return w.Flush()
	},
}

var initSchemaCMD = &cobra.Command{
	Use:   "init-schema",
	Short: "create the schemas and declared tables in a development database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connect(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.db.InitializeSchema(cmd.Context(), a.registry)
	},
}

var queryCMD = &cobra.Command{
	Use:   "query",
	Short: "run a stats query and print the rows as JSON lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connect(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		rows, err := a.stats.Find(cmd.Context(), statsQuery())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	addQueryFlags(queryCMD)
}
