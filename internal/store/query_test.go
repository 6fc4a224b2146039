package store_test

import (
	"net/url"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dsa-tracker/backend/internal/store"
)

func TestParseListQuery_Defaults(t *testing.T) {
	q := store.ParseListQuery(url.Values{})

	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("expected page=1 limit=10, got page=%d limit=%d", q.Page, q.Limit)
	}
	if q.Search != "" || q.StepNo != nil || q.Difficulty != nil || q.Completed != nil || q.Review != nil {
		t.Errorf("expected no filters, got %+v", q)
	}
	if len(q.Sort) != 0 {
		t.Errorf("expected empty sort, got %+v", q.Sort)
	}
}

func TestParseListQuery_InvalidPageAndLimit(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		wantPage    int
		wantLimit   int
	}{
		{"non-numeric", "abc", "xyz", 1, 10},
		{"zero", "0", "0", 1, 10},
		{"negative", "-3", "-1", 1, 10},
		{"limit clamped", "2", "500", 2, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := store.ParseListQuery(url.Values{"page": {c.page}, "limit": {c.limit}})
			if q.Page != c.wantPage || q.Limit != c.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d", q.Page, q.Limit, c.wantPage, c.wantLimit)
			}
		})
	}
}

func TestParseListQuery_BooleanCoercion(t *testing.T) {
	cases := []struct {
		value string
		want  *bool
	}{
		{"true", boolPtr(true)},
		{"false", boolPtr(false)},
		{"TRUE", boolPtr(false)}, // only the exact literal counts
		{"1", boolPtr(false)},
		{"", nil},
	}

	for _, c := range cases {
		values := url.Values{}
		if c.value != "" {
			values.Set("completed", c.value)
		}
		q := store.ParseListQuery(values)

		switch {
		case c.want == nil && q.Completed != nil:
			t.Errorf("completed=%q: expected absent filter, got %v", c.value, *q.Completed)
		case c.want != nil && q.Completed == nil:
			t.Errorf("completed=%q: expected filter %v, got absent", c.value, *c.want)
		case c.want != nil && *q.Completed != *c.want:
			t.Errorf("completed=%q: got %v, want %v", c.value, *q.Completed, *c.want)
		}
	}
}

func TestParseListQuery_SortSpec(t *testing.T) {
	q := store.ParseListQuery(url.Values{"sort": {"-difficulty, sl_no,bogus"}})

	want := []store.SortField{
		{Field: "difficulty", Descending: true},
		{Field: "sl_no", Descending: false},
	}
	if len(q.Sort) != len(want) {
		t.Fatalf("got %d sort fields, want %d: %+v", len(q.Sort), len(want), q.Sort)
	}
	for i := range want {
		if q.Sort[i] != want[i] {
			t.Errorf("sort[%d] = %+v, want %+v", i, q.Sort[i], want[i])
		}
	}
}

func TestSortDoc(t *testing.T) {
	defaultDoc := store.ListQuery{}.SortDoc()
	if len(defaultDoc) != 1 || defaultDoc[0].Key != "sl_no" || defaultDoc[0].Value != 1 {
		t.Errorf("default sort = %+v, want sl_no ascending", defaultDoc)
	}

	q := store.ListQuery{Sort: []store.SortField{
		{Field: "step_no"},
		{Field: "sl_no", Descending: true},
	}}
	doc := q.SortDoc()
	if doc[0].Key != "step_no" || doc[0].Value != 1 {
		t.Errorf("primary sort = %+v, want step_no ascending", doc[0])
	}
	if doc[1].Key != "sl_no" || doc[1].Value != -1 {
		t.Errorf("secondary sort = %+v, want sl_no descending", doc[1])
	}
}

func TestFilter_Search(t *testing.T) {
	q := store.ListQuery{Search: "two"}
	filter := q.Filter()

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or clause, got %+v", filter)
	}
	if len(or) != 3 {
		t.Fatalf("expected 3 search targets, got %d", len(or))
	}

	fields := map[string]bool{}
	for _, clause := range or {
		for field, cond := range clause {
			fields[field] = true
			re, ok := cond.(bson.M)
			if !ok || re["$regex"] != "two" || re["$options"] != "i" {
				t.Errorf("field %s: expected case-insensitive regex, got %+v", field, cond)
			}
		}
	}
	for _, field := range []string{"question_title", "step_title", "sub_step_title"} {
		if !fields[field] {
			t.Errorf("search does not cover %s", field)
		}
	}
}

func TestFilter_QuotesRegexMeta(t *testing.T) {
	filter := store.ListQuery{Search: "what is o(n)?"}.Filter()
	or := filter["$or"].([]bson.M)
	re := or[0]["question_title"].(bson.M)
	if re["$regex"] == "what is o(n)?" {
		t.Error("regex metacharacters in search input were not escaped")
	}
}

func TestFilter_CombinesClauses(t *testing.T) {
	stepNo, difficulty, completed := 2, 1, true
	q := store.ListQuery{
		Search:     "sum",
		StepNo:     &stepNo,
		Difficulty: &difficulty,
		Completed:  &completed,
	}
	filter := q.Filter()

	if filter["step_no"] != 2 || filter["difficulty"] != 1 || filter["completed"] != true {
		t.Errorf("equality filters missing: %+v", filter)
	}
	if _, ok := filter["$or"]; !ok {
		t.Errorf("search clause missing when combined with filters: %+v", filter)
	}
	if _, ok := filter["review"]; ok {
		t.Error("absent review filter leaked into predicate")
	}
}

func TestFilter_Empty(t *testing.T) {
	if filter := (store.ListQuery{}).Filter(); len(filter) != 0 {
		t.Errorf("empty query should build an empty predicate, got %+v", filter)
	}
}

func TestSkip(t *testing.T) {
	q := store.ListQuery{Page: 3, Limit: 10}
	if got := q.Skip(); got != 20 {
		t.Errorf("Skip() = %d, want 20", got)
	}
}

func boolPtr(b bool) *bool { return &b }
