package query

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"roshanservice/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Errors returned for malformed parameters. Malformed record data never
// errors: absent fields degrade (sort orders them last, search skips them).
var (
	ErrUnknownSortKey = errors.New("unknown sort key")
	ErrUnknownStatus  = errors.New("unknown status filter")
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

type Sort struct {
	Key       string
	Direction Direction
}

// Params describes one table view. Zero values mean "no constraint":
// empty/"All" status, empty date bounds, empty search, empty sort key.
type Params struct {
	Status    string
	StartDate string // inclusive, YYYY-MM-DD
	EndDate   string // inclusive, YYYY-MM-DD
	Search    string
	Sort      Sort
}

// StatusAll disables the status filter.
const StatusAll = "All"

// keyFuncs maps sort keys to record accessors. Keys follow the JSON field
// names the table columns bind to.
var keyFuncs = map[string]func(*models.ServiceRecord) string{
	"serviceId":             func(s *models.ServiceRecord) string { return s.ServiceID },
	"slipNo":                func(s *models.ServiceRecord) string { return s.SlipNo },
	"date":                  func(s *models.ServiceRecord) string { return s.Date },
	"customerName":          func(s *models.ServiceRecord) string { return s.CustomerName },
	"contact":               func(s *models.ServiceRecord) string { return s.Contact },
	"productName":           func(s *models.ServiceRecord) string { return s.ProductName },
	"brand":                 func(s *models.ServiceRecord) string { return s.Brand },
	"colorAndSize":          func(s *models.ServiceRecord) string { return s.ColorAndSize },
	"serviceType":           func(s *models.ServiceRecord) string { return s.ServiceType },
	"warrantyStatus":        func(s *models.ServiceRecord) string { return s.WarrantyStatus },
	"estimateAmount":        func(s *models.ServiceRecord) string { return s.EstimateAmount },
	"warrantyInvoiceNumber": func(s *models.ServiceRecord) string { return s.WarrantyInvoiceNumber },
	"warrantyDate":          func(s *models.ServiceRecord) string { return s.WarrantyDate },
	"imageUrl":              func(s *models.ServiceRecord) string { return s.ImageURL },
	"serviceStatus":         func(s *models.ServiceRecord) string { return s.ServiceStatus },
	"servicemanName":        func(s *models.ServiceRecord) string { return s.ServicemanName },
	"servicemanAmount":      func(s *models.ServiceRecord) string { return s.ServicemanAmount },
	"customerPaidAmount":    func(s *models.ServiceRecord) string { return s.CustomerPaidAmount },
	"invoiceNumber":         func(s *models.ServiceRecord) string { return s.InvoiceNumber },
}

// numericKeys compare as parsed integers, non-numeric treated as 0.
var numericKeys = map[string]bool{
	"slipNo":         true,
	"estimateAmount": true,
}

// Apply runs the fixed pipeline over a snapshot: status filter, date-range
// filter, free-text search, then a stable sort. The input slice is never
// mutated. Filters are conjunctive.
func Apply(records []models.ServiceRecord, p Params) ([]models.ServiceRecord, error) {
	if p.Status != "" && p.Status != StatusAll && !validStatus(p.Status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, p.Status)
	}
	var keyFn func(*models.ServiceRecord) string
	if p.Sort.Key != "" {
		var ok bool
		keyFn, ok = keyFuncs[p.Sort.Key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, p.Sort.Key)
		}
	}

	out := make([]models.ServiceRecord, 0, len(records))
	for _, rec := range records {
		if p.Status != "" && p.Status != StatusAll && rec.ServiceStatus != p.Status {
			continue
		}
		if p.StartDate != "" || p.EndDate != "" {
			// A record with no valid date is excluded whenever either bound
			// is set. Bounds are inclusive, compared lexicographically.
			if rec.Date == "" {
				continue
			}
			if p.StartDate != "" && rec.Date < p.StartDate {
				continue
			}
			if p.EndDate != "" && rec.Date > p.EndDate {
				continue
			}
		}
		if p.Search != "" && !matchesSearch(&rec, p.Search) {
			continue
		}
		out = append(out, rec)
	}

	if keyFn != nil {
		sortRecords(out, keyFn, numericKeys[p.Sort.Key], p.Sort.Direction)
	}
	return out, nil
}

// NextSort advances the table's sort state for a column selection: selecting
// the current key flips the direction, selecting a new key resets to ascending.
func NextSort(cur Sort, key string) Sort {
	if cur.Key == key && cur.Direction == Ascending {
		return Sort{Key: key, Direction: Descending}
	}
	return Sort{Key: key, Direction: Ascending}
}

func validStatus(status string) bool {
	for _, s := range models.ServiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// matchesSearch tests the lowercased term against the string form of every
// attribute. The term is used verbatim: a whitespace-only term is a literal
// substring, not a blank to skip.
func matchesSearch(rec *models.ServiceRecord, term string) bool {
	needle := strings.ToLower(term)
	for _, v := range rec.SearchValues() {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func sortRecords(records []models.ServiceRecord, keyFn func(*models.ServiceRecord) string, numeric bool, dir Direction) {
	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(records, func(i, j int) bool {
		av := keyFn(&records[i])
		bv := keyFn(&records[j])

		// Absent values order last regardless of direction; the last
		// placement itself never inverts.
		if av == "" {
			return false
		}
		if bv == "" {
			return true
		}

		var cmp int
		if numeric {
			cmp = parseIntOrZero(av) - parseIntOrZero(bv)
		} else {
			cmp = coll.CompareString(av, bv)
		}
		if dir == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
