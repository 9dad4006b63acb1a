package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectTotals(t *testing.T) {
	totals := NewProjectTotals()
	assert.Equal(t, 0, totals.Len())
	assert.Empty(t, totals.Items())

	totals.Add("P2", decimal.RequireFromString("6"))
	totals.Add("P1", decimal.RequireFromString("8"))
	totals.Add("P2", decimal.RequireFromString("2.5"))

	require.Equal(t, 2, totals.Len())

	items := totals.Items()
	assert.Equal(t, "P2", items[0].Name)
	assert.Equal(t, "8.50", items[0].Hours.StringFixed(2))
	assert.Equal(t, "P1", items[1].Name)

	hours, ok := totals.Get("P1")
	assert.True(t, ok)
	assert.True(t, hours.Equal(decimal.NewFromInt(8)))

	_, ok = totals.Get("P3")
	assert.False(t, ok)
}

func TestProjectTotals_NilIsEmpty(t *testing.T) {
	var totals *ProjectTotals
	assert.Equal(t, 0, totals.Len())
	assert.Nil(t, totals.Items())
}

func TestReconciliation_WatcherIDs(t *testing.T) {
	rec := Reconciliation{
		Missing: []Member{{ID: 7, Name: "B"}, {ID: 9, Name: "D"}},
	}
	assert.Equal(t, []int{7, 9}, rec.WatcherIDs())
	assert.False(t, rec.Complete())

	assert.Equal(t, []int{}, Reconciliation{}.WatcherIDs())
	assert.True(t, Reconciliation{}.Complete())
}
