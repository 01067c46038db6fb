// Package lifecycle holds the field-presence rules a service record must
// satisfy as its warranty classification and status change. Validation is
// pure: it either returns the normalized payload (inactive warranty-branch
// fields blanked) or the list of violated fields. It never touches storage.
package lifecycle

import (
	"regexp"
	"strings"

	"roshanservice/models"
)

type Mode int

const (
	Create Mode = iota
	Update
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

var (
	contactPattern = regexp.MustCompile(`^[0-9]{10,}$`)
	amountPattern  = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

// Validate checks a payload against the rules for the given mode and returns
// the normalized payload. A non-empty error list means the payload must not be
// submitted; the payload returned alongside errors is the partially
// normalized input and should be discarded.
func Validate(p models.ServicePayload, mode Mode) (models.ServicePayload, []FieldError) {
	var errs []FieldError

	switch p.WarrantyStatus {
	case models.WarrantyClassNonWarranty:
		if strings.TrimSpace(p.EstimateAmount) == "" {
			errs = append(errs, FieldError{"estimateAmount", "estimate amount is required for non-warranty service"})
		} else if !amountPattern.MatchString(strings.TrimSpace(p.EstimateAmount)) {
			errs = append(errs, FieldError{"estimateAmount", "estimate amount must be numeric"})
		}
		// The warranty branch is inactive: blank it whatever came in.
		p.WarrantyInvoiceNumber = ""
		p.WarrantyDate = ""
	case models.WarrantyClassWarranty:
		if strings.TrimSpace(p.WarrantyInvoiceNumber) == "" {
			errs = append(errs, FieldError{"warrantyInvoiceNumber", "warranty invoice number is required"})
		}
		if strings.TrimSpace(p.WarrantyDate) == "" {
			errs = append(errs, FieldError{"warrantyDate", "warranty date is required"})
		}
		p.EstimateAmount = ""
	default:
		errs = append(errs, FieldError{"warrantyStatus", "warranty status must be Warranty or Non-Warranty"})
	}

	switch mode {
	case Create:
		if countServiceTypes(p.ServiceType) == 0 {
			errs = append(errs, FieldError{"serviceType", "select at least one service description"})
		}
		if strings.TrimSpace(p.CustomerName) == "" {
			errs = append(errs, FieldError{"customerName", "customer name is required"})
		}
		if !contactPattern.MatchString(p.Contact) {
			errs = append(errs, FieldError{"contact", "contact number must be at least 10 digits"})
		}
		if p.Image == "" {
			errs = append(errs, FieldError{"image", "product image is required"})
		}
	case Update:
		// Identity, contact and product fields are immutable after creation
		// and not re-checked here.
		if !validStatus(p.ServiceStatus) {
			errs = append(errs, FieldError{"serviceStatus", "unknown service status"})
		}
	}

	return p, errs
}

func countServiceTypes(joined string) int {
	n := 0
	for _, part := range strings.Split(joined, ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

func validStatus(status string) bool {
	for _, s := range models.ServiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}
