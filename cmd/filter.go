package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datausa/datausa-go/datausa/database"
	"github.com/datausa/datausa-go/datausa/database/repositories"
	"github.com/datausa/datausa-go/datausa/database/tables"
)

var (
	queryTable string
	queryShows map[string]string
	queryYear  int
	queryLimit int
)

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&queryTable, "table", "", "schema qualified table, e.g. pums_1year.ygi")
	cmd.Flags().StringToStringVar(&queryShows, "show", nil, "show column and level, e.g. --show geo=state --show naics=1")
	cmd.Flags().IntVar(&queryYear, "year", 0, "only rows of this year")
	cmd.Flags().IntVar(&queryLimit, "limit", 0, "maximum number of rows")
	_ = cmd.MarkFlagRequired("table")
}

func statsQuery() repositories.StatsQuery {
	return repositories.StatsQuery{
		Table: queryTable,
		Shows: queryShows,
		Year:  queryYear,
		Limit: queryLimit,
	}
}

var filterCMD = &cobra.Command{
	Use:   "filter",
	Short: "print the SQL a stats query resolves to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := database.NewBunDB(cfg.DB)
		defer db.Close()

		stats, err := newStatsRepository(db, tables.NewRegistry(db))
		if err != nil {
			return err
		}
		sel, err := stats.BuildQuery(statsQuery())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), sel.String())
		return err
	},
}

func init() {
	addQueryFlags(filterCMD)
}
