package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func visitListContext(t *testing.T, target string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestVisitFilterDefaultsToNewestFirst(t *testing.T) {
	c := visitListContext(t, "/api/visits")

	f := visitFilter(c)

	require.Equal(t, "created_at", f.OrderBy, "unparameterized listing must sort by creation time")
	require.True(t, f.Descending, "unparameterized listing must return newest visits first")
	require.Equal(t, defaultVisitLimit, f.Limit, "default limit must apply")
	require.Zero(t, f.Offset, "offset must default to zero")
}

func TestVisitFilterExplicitOrder(t *testing.T) {
	c := visitListContext(t, "/api/visits?order=visit_date&limit=10&offset=20")

	f := visitFilter(c)

	require.Equal(t, "visit_date", f.OrderBy, "order parameter must override the default column")
	require.False(t, f.Descending, "order without leading dash means ascending")
	require.Equal(t, 10, f.Limit, "limit parameter must be honoured")
	require.Equal(t, 20, f.Offset, "offset parameter must be honoured")
}

func TestVisitFilterDescendingPrefix(t *testing.T) {
	c := visitListContext(t, "/api/visits?order=-calculated_score")

	f := visitFilter(c)

	require.Equal(t, "calculated_score", f.OrderBy, "leading dash must be stripped from the column")
	require.True(t, f.Descending, "leading dash means descending")
}

func TestVisitFilterLimitCapped(t *testing.T) {
	c := visitListContext(t, "/api/visits?limit=100000")

	f := visitFilter(c)

	require.Equal(t, maxVisitLimit, f.Limit, "limit must be capped")
}
