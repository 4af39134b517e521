package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/datausa/datausa-go/datausa/attrs"
	"github.com/datausa/datausa-go/datausa/core"
	"github.com/datausa/datausa-go/datausa/database/tables"
)

func newTestRepository(t *testing.T, opts StatsOptions) *statsRepository {
	t.Helper()
	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewStatsRepository(NewBaseRepository(db, time.Second), tables.NewRegistry(db), opts)
	require.NoError(t, err)
	return repo.(*statsRepository)
}

func TestBuildQuery(t *testing.T) {
	repo := newTestRepository(t, StatsOptions{})

	sel, err := repo.BuildQuery(StatsQuery{
		Table: "pums_1year.ygio",
		Shows: map[string]string{attrs.Geo: attrs.State, attrs.Soc: "3", attrs.Naics: attrs.All},
		Year:  2014,
		Limit: 50,
	})
	require.NoError(t, err)

	query := sel.String()
	assert.Contains(t, query, `FROM "pums_1year"."ygio"`)
	assert.Contains(t, query, `"geo" LIKE '040%'`)
	assert.Contains(t, query, `"soc_level" = 3`)
	assert.NotContains(t, query, "naics_level")
	assert.Contains(t, query, `"year" = 2014`)
	assert.Contains(t, query, `ORDER BY "year" DESC, "geo", "naics", "soc"`)
	assert.Contains(t, query, "LIMIT 50")
}

func TestBuildQueryAllLevels(t *testing.T) {
	repo := newTestRepository(t, StatsOptions{})

	sel, err := repo.BuildQuery(StatsQuery{Table: "acs.yg_income"})
	require.NoError(t, err)

	query := sel.String()
	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
}

func TestBuildQueryLimitCap(t *testing.T) {
	repo := newTestRepository(t, StatsOptions{MaxLimit: 100})

	tests := []struct {
		limit int
		want  string
	}{
		{limit: 0, want: "LIMIT 100"},
		{limit: 500, want: "LIMIT 100"},
		{limit: 10, want: "LIMIT 10"},
	}

	for _, tt := range tests {
		sel, err := repo.BuildQuery(StatsQuery{Table: "pums_1year.yg", Limit: tt.limit})
		require.NoError(t, err)
		assert.Contains(t, sel.String(), tt.want)
	}
}

func TestBuildQueryErrors(t *testing.T) {
	repo := newTestRepository(t, StatsOptions{})

	tests := []struct {
		name   string
		query  StatsQuery
		target error
	}{
		{name: "unknown table", query: StatsQuery{Table: "pums_1year.nope"}, target: core.ErrUnknownTable},
		{name: "invalid geo level", query: StatsQuery{Table: "pums_1year.yg", Shows: map[string]string{attrs.Geo: attrs.County}}, target: core.ErrInvalidLevel},
		{name: "invalid naics level", query: StatsQuery{Table: "pums_1year.ygi", Shows: map[string]string{attrs.Naics: "7"}}, target: core.ErrInvalidLevel},
		{name: "unsupported show", query: StatsQuery{Table: "pums_1year.yg", Shows: map[string]string{attrs.Soc: "1"}}, target: core.ErrUnsupportedShow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := repo.BuildQuery(tt.query)
			assert.Nil(t, sel)
			assert.ErrorIs(t, err, tt.target)

			rows, err := repo.Find(context.Background(), tt.query)
			assert.Nil(t, rows)
			assert.ErrorIs(t, err, tt.target)
			assert.False(t, IsRepositoryError(err))
		})
	}
}

func TestFindServesCachedRows(t *testing.T) {
	repo := newTestRepository(t, StatsOptions{CacheSize: 8})
	require.NotNil(t, repo.cache)

	q := StatsQuery{Table: "pums_1year.ygi", Shows: map[string]string{attrs.Naics: "0"}}
	sel, err := repo.BuildQuery(q)
	require.NoError(t, err)

	want := []Row{{"year": 2014, "geo": "01000US", "naics": "23", "naics_level": 0}}
	repo.cache.Add(sel.String(), want)

	got, err := repo.Find(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoCache(t *testing.T) {
	repo := newTestRepository(t, StatsOptions{})
	assert.Nil(t, repo.cache)
}

func TestHandleError(t *testing.T) {
	base := NewBaseRepository(nil, 0)

	assert.NoError(t, base.HandleError("find", "acs.yg", nil))
	assert.NoError(t, base.HandleError("find", "acs.yg", sql.ErrNoRows))

	boom := errors.New("boom")
	err := base.HandleError("find", "acs.yg", boom)
	assert.True(t, IsRepositoryError(err))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "repository error during find for acs.yg: boom", err.Error())
}

func TestSelectWithTimeout(t *testing.T) {
	base := NewBaseRepository(nil, 50*time.Millisecond)

	err := base.SelectWithTimeout(context.Background(), "find", "acs.yg", func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
		return nil
	})
	assert.NoError(t, err)
}
