package notice

import (
	"strings"
	"time"
)

// PageFilter holds the derived filters: free-text search, exact publish
// day, and department equality. These come on top of the status filter and
// are applied in memory, before pagination.
type PageFilter struct {
	search     string
	day        time.Time
	hasDay     bool
	department string
}

// NewPageFilter parses the raw query values. The date value, when present,
// must be a local calendar day in 2006-01-02 form.
func NewPageFilter(search, date, department string) (PageFilter, error) {
	f := PageFilter{
		search:     strings.ToLower(strings.TrimSpace(search)),
		department: strings.TrimSpace(department),
	}
	if date = strings.TrimSpace(date); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			vErr := &ValidationError{}
			vErr.add("date", "must be a calendar day in 2006-01-02 form")
			return PageFilter{}, vErr
		}
		f.day = day
		f.hasDay = true
	}
	return f, nil
}

// Empty reports whether no derived filter is set, in which case pagination
// can be pushed down to the store.
func (f PageFilter) Empty() bool {
	return f.search == "" && !f.hasDay && f.department == ""
}

// Matches applies all set filters to one notice.
func (f PageFilter) Matches(n *Notice) bool {
	if f.department != "" && n.TargetAudience != f.department {
		return false
	}
	if f.search != "" && !strings.Contains(searchHaystack(n), f.search) {
		return false
	}
	if f.hasDay && !sameLocalDay(n.PublishDate, f.day) {
		return false
	}
	return true
}

// Apply keeps the matching notices, preserving order.
func (f PageFilter) Apply(items []*Notice) []*Notice {
	kept := []*Notice{}
	for _, n := range items {
		if f.Matches(n) {
			kept = append(kept, n)
		}
	}
	return kept
}

// searchHaystack joins title, target audience, recipient employee id and
// recipient name with single spaces, skipping absent fields, lowercased.
func searchHaystack(n *Notice) string {
	fields := []string{n.Title, n.TargetAudience}
	if n.RecipientDetails != nil {
		fields = append(fields, n.RecipientDetails.EmployeeID, n.RecipientDetails.Name)
	}
	present := fields[:0]
	for _, f := range fields {
		if f != "" {
			present = append(present, f)
		}
	}
	return strings.ToLower(strings.Join(present, " "))
}

// sameLocalDay compares the local calendar dates of t and day, ignoring
// time of day.
func sameLocalDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(time.Local).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TotalPages is ceil(total/limit); zero records means zero pages.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// PageSlice cuts one page out of the full, already-sorted result set.
func PageSlice(items []*Notice, page, limit int) []*Notice {
	skip := (page - 1) * limit
	if skip >= len(items) {
		return []*Notice{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
