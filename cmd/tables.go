package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/datausa/datausa-go/datausa/database"
	"github.com/datausa/datausa-go/datausa/database/tables"
)

var tablesDataset string

var tablesCMD = &cobra.Command{
	Use:   "tables",
	Short: "list the declared stats tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := database.NewBunDB(cfg.DB)
		defer db.Close()

		registry := tables.NewRegistry(db)
		list := registry.Tables()
		if tablesDataset != "" {
			list = registry.Dataset(tables.Dataset(tablesDataset))
			if len(list) == 0 {
				return fmt.Errorf("unknown dataset %q", tablesDataset)
			}
		}
		return writeTables(cmd.OutOrStdout(), list)
	},
}

func init() {
	tablesCMD.Flags().StringVar(&tablesDataset, "dataset", "", "only list tables of this dataset (pums_1year, acs_1year, acs_5year)")
}

func writeTables(out io.Writer, list []*tables.Table) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tKEY\tMOE\tLEVELS\tREFLECTED")
	for _, t := range list {
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%t\n",
			t.FullName(),
			strings.Join(t.PrimaryKey, ","),
			t.MedianMoe,
			formatLevels(t.SupportedLevels()),
			t.Reflected,
		)
	}
	return w.Flush()
}

func formatLevels(levels map[string][]string) string {
	shows := make([]string, 0, len(levels))
	for show := range levels {
		shows = append(shows, show)
	}
	sort.Strings(shows)

	parts := make([]string, 0, len(shows))
	for _, show := range shows {
		parts = append(parts, show+"="+strings.Join(levels[show], "|"))
	}
	return strings.Join(parts, " ")
}
