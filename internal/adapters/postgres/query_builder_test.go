package postgres

import (
	"reflect"
	"sharespace/internal/core/domain"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(s string) *domain.CalendarDate {
	d := domain.MustParseCalendarDate(s)
	return &d
}

func TestBuildListingQuery(t *testing.T) {
	owner := uuid.New()
	from, to := date("2024-06-15"), date("2024-08-01")

	cases := []struct {
		name  string
		query domain.ListingQuery
		where string
		tail  string
		args  []interface{}
	}{
		{
			name:  "empty window returns everything",
			query: domain.ListingQuery{},
			where: "",
			tail:  " ORDER BY created_at DESC, id DESC",
			args:  []interface{}{},
		},
		{
			name:  "source window",
			query: domain.ListingQuery{Window: domain.SearchWindow{From: from, To: to}},
			where: " WHERE available_from >= $1 AND available_until <= $2",
			tail:  " ORDER BY created_at DESC, id DESC",
			args:  []interface{}{from.Time(), to.Time()},
		},
		{
			name:  "source to only",
			query: domain.ListingQuery{Window: domain.SearchWindow{To: to}, Mode: domain.FilterModeSource},
			where: " WHERE available_until <= $1",
			tail:  " ORDER BY created_at DESC, id DESC",
			args:  []interface{}{to.Time()},
		},
		{
			name:  "owner with limit",
			query: domain.ListingQuery{OwnerID: &owner, Limit: 3},
			where: " WHERE owner_id = $1",
			tail:  " ORDER BY created_at DESC, id DESC LIMIT $2",
			args:  []interface{}{owner, 3},
		},
		{
			name:  "coverage window",
			query: domain.ListingQuery{Window: domain.SearchWindow{From: from, To: to}, Mode: domain.FilterModeCoverage},
			where: " WHERE available_from <= $1 AND (available_until IS NULL OR available_until >= $2)",
			tail:  " ORDER BY created_at DESC, id DESC",
			args:  []interface{}{from.Time(), to.Time()},
		},
		{
			name:  "coverage to only uses to for both bounds",
			query: domain.ListingQuery{Window: domain.SearchWindow{To: to}, Mode: domain.FilterModeCoverage},
			where: " WHERE available_from <= $1 AND (available_until IS NULL OR available_until >= $2)",
			tail:  " ORDER BY created_at DESC, id DESC",
			args:  []interface{}{to.Time(), to.Time()},
		},
		{
			name:  "coverage reversed window",
			query: domain.ListingQuery{Window: domain.SearchWindow{From: to, To: from}, Mode: domain.FilterModeCoverage},
			where: " WHERE FALSE",
			tail:  " ORDER BY created_at DESC, id DESC",
			args:  []interface{}{},
		},
	}

	prefix := "SELECT " + listingColumns + " FROM listings"
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := buildListingQuery(tc.query)
			if want := prefix + tc.where + tc.tail; sql != want {
				t.Fatalf("unexpected sql:\n got %q\nwant %q", sql, want)
			}
			if !reflect.DeepEqual(args, tc.args) {
				t.Fatalf("unexpected args %v, want %v", args, tc.args)
			}
		})
	}
}

func TestBuildListingQueryArgsAreDates(t *testing.T) {
	_, args := buildListingQuery(domain.ListingQuery{Window: domain.SearchWindow{From: date("2024-06-15")}})
	ts, ok := args[0].(time.Time)
	if !ok || ts.Hour() != 0 || ts.Location() != time.UTC || !strings.HasPrefix(ts.Format(time.RFC3339), "2024-06-15") {
		t.Fatalf("expected midnight UTC date argument, got %#v", args[0])
	}
}

func TestWriteQueriesAreScopedToOwner(t *testing.T) {
	cases := map[string]struct {
		query string
		where string
	}{
		"update": {updateListingQuery, "WHERE id = $1 AND owner_id = $12"},
		"delete": {deleteListingQuery, "WHERE id = $1 AND owner_id = $2"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if !strings.HasSuffix(strings.TrimSpace(tc.query), tc.where) {
				t.Fatalf("query must end with %q, got %q", tc.where, tc.query)
			}
		})
	}
}
