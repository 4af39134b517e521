package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datausa/datausa-go/datausa/core"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	queryTable, queryYear, queryLimit = "", 0, 0
	queryShows = map[string]string{}
	tablesDataset = ""

	var out bytes.Buffer
	rootCMD.SetOut(&out)
	rootCMD.SetErr(io.Discard)
	rootCMD.SetArgs(append(args, "--config", "testdata/config.toml"))
	err := rootCMD.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTablesCommand(t *testing.T) {
	out, err := run(t, "tables", "--dataset", "pums_1year")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 11)
	assert.Contains(t, out, "pums_1year.ygio")
	assert.Contains(t, out, "year,geo,naics,soc")
	assert.Contains(t, out, "geo=nation|state|puma|all")
	assert.NotContains(t, out, "acs.yg")
}

func TestTablesCommandUnknownDataset(t *testing.T) {
	_, err := run(t, "tables", "--dataset", "decennial")
	assert.Error(t, err)
}

func TestFilterCommand(t *testing.T) {
	out, err := run(t, "filter", "--table", "pums_1year.ygi", "--show", "geo=puma", "--show", "naics=2", "--year", "2014")
	require.NoError(t, err)

	assert.Contains(t, out, `FROM "pums_1year"."ygi"`)
	assert.Contains(t, out, `"geo" LIKE '795%'`)
	assert.Contains(t, out, `"naics_level" = 2`)
	assert.Contains(t, out, `"year" = 2014`)
	assert.Contains(t, out, "LIMIT 1000")
}

func TestFilterCommandInvalidLevel(t *testing.T) {
	_, err := run(t, "filter", "--table", "pums_1year.yg", "--show", "geo=county")
	assert.ErrorIs(t, err, core.ErrInvalidLevel)
}

func TestFormatLevels(t *testing.T) {
	assert.Equal(t, "geo=nation|all soc=0|all", formatLevels(map[string][]string{
		"soc": {"0", "all"},
		"geo": {"nation", "all"},
	}))
}
