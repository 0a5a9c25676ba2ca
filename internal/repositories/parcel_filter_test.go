package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParcelFilterEmptyMatchesEverything(t *testing.T) {
	where, args := ParcelFilter{}.Where()

	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestParcelFilterAllSentinelContributesNothing(t *testing.T) {
	f := ParcelFilter{
		Date:       "all",
		Status:     "ALL",
		RouteID:    "all",
		OperatorID: "all",
	}
	where, args := f.Where()

	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestParcelFilterSinglePredicates(t *testing.T) {
	where, args := ParcelFilter{Date: "2025-03-01"}.Where()
	assert.Contains(t, where, "p.travel_date = ?")
	assert.Equal(t, []any{"2025-03-01"}, args)

	where, args = ParcelFilter{Status: "Delivered"}.Where()
	assert.Contains(t, where, "p.status = ?")
	assert.Equal(t, []any{"delivered"}, args)

	where, args = ParcelFilter{RouteID: "7"}.Where()
	assert.Contains(t, where, "p.route_id = ?")
	assert.Equal(t, []any{"7"}, args)

	where, args = ParcelFilter{OperatorID: "3"}.Where()
	assert.Contains(t, where, "b.operator_id = ?")
	assert.Equal(t, []any{"3"}, args)
}

func TestParcelFilterCombinedPredicatesAreAnded(t *testing.T) {
	f := ParcelFilter{Date: "2025-03-01", Status: "pending", RouteID: "2"}
	where, args := f.Where()

	assert.Equal(t, 3, strings.Count(where, " AND "))
	assert.Len(t, args, 3)
}

func TestParcelFilterSearchBindsSamePatternFourTimes(t *testing.T) {
	where, args := ParcelFilter{Search: "budi"}.Where()

	assert.Contains(t, where, "p.tracking_number LIKE ?")
	assert.Contains(t, where, "p.sender_name LIKE ?")
	assert.Contains(t, where, "p.receiver_name LIKE ?")
	assert.Contains(t, where, "p.receiver_phone LIKE ?")
	if assert.Len(t, args, 4) {
		for _, a := range args {
			assert.Equal(t, "%budi%", a)
		}
	}
}

func TestParcelFilterSearchEscapesWildcards(t *testing.T) {
	_, args := ParcelFilter{Search: "100%_x"}.Where()

	if assert.Len(t, args, 4) {
		assert.Equal(t, `%100\%\_x%`, args[0])
	}
}

func TestParcelFilterNeverInterpolatesValues(t *testing.T) {
	f := ParcelFilter{Search: "'; DROP TABLE parcels;--", Status: "pending"}
	where, _ := f.Where()

	assert.NotContains(t, where, "DROP TABLE")
}
