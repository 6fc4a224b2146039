package store

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// sortableFields are the fields a sort spec may reference; unknown names are
// dropped rather than forwarded to the store.
var sortableFields = map[string]bool{
	"id":             true,
	"step_no":        true,
	"sub_step_no":    true,
	"sl_no":          true,
	"step_title":     true,
	"sub_step_title": true,
	"question_title": true,
	"difficulty":     true,
	"completed":      true,
	"review":         true,
	"created_at":     true,
	"updated_at":     true,
}

// SortField is one component of a compound sort.
type SortField struct {
	Field      string
	Descending bool
}

// ListQuery is the parsed form of the listing endpoint's query parameters.
// It is a plain value: building the store predicate from it has no side
// effects, so the whole request-to-predicate path is unit-testable.
type ListQuery struct {
	Page  int
	Limit int

	Search     string
	StepNo     *int
	Difficulty *int
	Completed  *bool
	Review     *bool

	Sort []SortField
}

// ParseListQuery interprets raw query parameters. Non-numeric or non-positive
// page/limit fall back to defaults and limit is capped; the boolean filters
// follow the catalog's long-standing coercion: the literal "true" selects
// true, any other non-empty value selects false.
func ParseListQuery(values url.Values) ListQuery {
	q := ListQuery{
		Page:   defaultPage,
		Limit:  defaultLimit,
		Search: strings.TrimSpace(values.Get("search")),
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit >= 1 {
		q.Limit = min(limit, maxLimit)
	}

	if stepNo, err := strconv.Atoi(values.Get("step_no")); err == nil {
		q.StepNo = &stepNo
	}
	if difficulty, err := strconv.Atoi(values.Get("difficulty")); err == nil {
		q.Difficulty = &difficulty
	}
	if v := values.Get("completed"); v != "" {
		completed := v == "true"
		q.Completed = &completed
	}
	if v := values.Get("review"); v != "" {
		review := v == "true"
		q.Review = &review
	}

	q.Sort = parseSortSpec(values.Get("sort"))
	return q
}

func parseSortSpec(spec string) []SortField {
	var fields []SortField
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		if !sortableFields[name] {
			continue
		}
		fields = append(fields, SortField{Field: name, Descending: desc})
	}
	return fields
}

// Filter builds the conjunctive match predicate. Search matches as a
// case-insensitive substring against the question, step and sub-step titles;
// the equality filters are ANDed with it.
func (q ListQuery) Filter() bson.M {
	filter := bson.M{}

	if q.Search != "" {
		pattern := regexp.QuoteMeta(q.Search)
		re := bson.M{"$regex": pattern, "$options": "i"}
		filter["$or"] = []bson.M{
			{"question_title": re},
			{"step_title": re},
			{"sub_step_title": re},
		}
	}
	if q.StepNo != nil {
		filter["step_no"] = *q.StepNo
	}
	if q.Difficulty != nil {
		filter["difficulty"] = *q.Difficulty
	}
	if q.Completed != nil {
		filter["completed"] = *q.Completed
	}
	if q.Review != nil {
		filter["review"] = *q.Review
	}

	return filter
}

// SortDoc builds the compound sort in spec order, defaulting to serial
// number ascending.
func (q ListQuery) SortDoc() bson.D {
	if len(q.Sort) == 0 {
		return bson.D{{Key: "sl_no", Value: 1}}
	}
	doc := make(bson.D, len(q.Sort))
	for i, f := range q.Sort {
		order := 1
		if f.Descending {
			order = -1
		}
		doc[i] = bson.E{Key: f.Field, Value: order}
	}
	return doc
}

// Skip is the number of matching records preceding the requested page.
func (q ListQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}
