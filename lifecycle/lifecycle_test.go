package lifecycle

import (
	"testing"

	"roshanservice/models"
)

func hasField(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func validCreatePayload() models.ServicePayload {
	return models.ServicePayload{
		Date:           "2024-03-05",
		CustomerName:   "Roshan Kumar",
		Contact:        "9345735945",
		ProductName:    "Trolley Bag",
		ServiceType:    "Stitching, Zip Repair/Replacement",
		WarrantyStatus: models.WarrantyClassNonWarranty,
		EstimateAmount: "450",
		Image:          "aW1hZ2U=",
		ImageName:      "bag.jpg",
		ImageMimeType:  "image/jpeg",
	}
}

func TestWarrantyBlanksEstimate(t *testing.T) {
	p := validCreatePayload()
	p.WarrantyStatus = models.WarrantyClassWarranty
	p.WarrantyInvoiceNumber = "INV-100"
	p.WarrantyDate = "2024-01-10"
	p.EstimateAmount = "999" // stale from a prior selection

	out, errs := Validate(p, Create)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.EstimateAmount != "" {
		t.Errorf("estimate amount not blanked: %q", out.EstimateAmount)
	}
	if out.WarrantyInvoiceNumber != "INV-100" || out.WarrantyDate != "2024-01-10" {
		t.Errorf("warranty fields changed: %q %q", out.WarrantyInvoiceNumber, out.WarrantyDate)
	}
}

func TestNonWarrantyBlanksWarrantyFields(t *testing.T) {
	p := validCreatePayload()
	p.WarrantyInvoiceNumber = "INV-100"
	p.WarrantyDate = "2024-01-10"

	out, errs := Validate(p, Create)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.WarrantyInvoiceNumber != "" || out.WarrantyDate != "" {
		t.Errorf("warranty fields not blanked: %q %q", out.WarrantyInvoiceNumber, out.WarrantyDate)
	}
	if out.EstimateAmount != "450" {
		t.Errorf("estimate amount changed: %q", out.EstimateAmount)
	}
}

func TestWarrantyRequiresInvoiceAndDate(t *testing.T) {
	p := validCreatePayload()
	p.WarrantyStatus = models.WarrantyClassWarranty

	_, errs := Validate(p, Create)
	if !hasField(errs, "warrantyInvoiceNumber") {
		t.Error("missing warrantyInvoiceNumber error")
	}
	if !hasField(errs, "warrantyDate") {
		t.Error("missing warrantyDate error")
	}
}

func TestNonWarrantyEstimateMustBeNumeric(t *testing.T) {
	p := validCreatePayload()
	p.EstimateAmount = "about 500"
	if _, errs := Validate(p, Create); !hasField(errs, "estimateAmount") {
		t.Error("non-numeric estimate accepted")
	}

	p.EstimateAmount = ""
	if _, errs := Validate(p, Create); !hasField(errs, "estimateAmount") {
		t.Error("blank estimate accepted")
	}

	p.EstimateAmount = "450.50"
	if _, errs := Validate(p, Create); hasField(errs, "estimateAmount") {
		t.Error("decimal estimate rejected")
	}
}

func TestUnknownWarrantyStatusRejected(t *testing.T) {
	p := validCreatePayload()
	p.WarrantyStatus = "Maybe"
	if _, errs := Validate(p, Create); !hasField(errs, "warrantyStatus") {
		t.Error("unknown warranty status accepted")
	}
}

func TestCreateRequiresServiceType(t *testing.T) {
	p := validCreatePayload()
	p.ServiceType = " , ,"
	if _, errs := Validate(p, Create); !hasField(errs, "serviceType") {
		t.Error("empty service type selection accepted")
	}
}

func TestCreateContactPattern(t *testing.T) {
	p := validCreatePayload()

	p.Contact = "12345"
	if _, errs := Validate(p, Create); !hasField(errs, "contact") {
		t.Error("short contact accepted")
	}

	p.Contact = "93457a5945"
	if _, errs := Validate(p, Create); !hasField(errs, "contact") {
		t.Error("non-digit contact accepted")
	}

	p.Contact = "919345735945"
	if _, errs := Validate(p, Create); hasField(errs, "contact") {
		t.Error("12-digit contact rejected")
	}
}

func TestCreateRequiresImage(t *testing.T) {
	p := validCreatePayload()
	p.Image = ""
	if _, errs := Validate(p, Create); !hasField(errs, "image") {
		t.Error("missing image accepted on create")
	}
}

func TestUpdateSkipsIntakeChecks(t *testing.T) {
	p := validCreatePayload()
	p.Image = ""
	p.CustomerName = ""
	p.Contact = ""
	p.ServiceType = ""
	p.ServiceStatus = models.StatusInService

	if _, errs := Validate(p, Update); len(errs) != 0 {
		t.Errorf("update re-ran intake checks: %v", errs)
	}
}

func TestUpdateValidatesStatus(t *testing.T) {
	p := validCreatePayload()
	p.ServiceStatus = "Archived"
	if _, errs := Validate(p, Update); !hasField(errs, "serviceStatus") {
		t.Error("unknown service status accepted on update")
	}

	for _, status := range models.ServiceStatuses {
		p.ServiceStatus = status
		if _, errs := Validate(p, Update); hasField(errs, "serviceStatus") {
			t.Errorf("valid status %q rejected", status)
		}
	}
}
