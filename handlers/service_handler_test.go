package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roshanservice/models"
	"roshanservice/repository"

	"go.uber.org/zap"
)

type fakeServiceRepo struct {
	records []models.ServiceRecord
	lastNo  int64

	created *models.ServiceRecord
	updated *models.ServiceRecord
}

func (f *fakeServiceRepo) GetAllServices(ctx context.Context) ([]models.ServiceRecord, error) {
	return f.records, nil
}

func (f *fakeServiceRepo) GetServiceByID(ctx context.Context, serviceID string) (*models.ServiceRecord, error) {
	for i := range f.records {
		if f.records[i].ServiceID == serviceID {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeServiceRepo) LastSlipNumber(ctx context.Context) (int64, error) {
	return f.lastNo, nil
}

func (f *fakeServiceRepo) CreateService(ctx context.Context, rec *models.ServiceRecord) error {
	rec.ServiceID = "generated-id"
	f.created = rec
	return nil
}

func (f *fakeServiceRepo) UpdateService(ctx context.Context, rec *models.ServiceRecord) error {
	f.updated = rec
	return nil
}

func (f *fakeServiceRepo) UpdateSlipPdf(ctx context.Context, serviceID, pdfURL string) error {
	return nil
}

type fakeUploader struct {
	uploads []string
	deletes []string
}

func (f *fakeUploader) Upload(ctx context.Context, fileBytes []byte, filename, contentType string) (string, error) {
	f.uploads = append(f.uploads, filename)
	return "https://pub.example.com/" + filename, nil
}

func (f *fakeUploader) Delete(ctx context.Context, fileURL string) error {
	f.deletes = append(f.deletes, fileURL)
	return nil
}

func newServiceHandler(repo *fakeServiceRepo, up *fakeUploader) *ServiceHandler {
	return &ServiceHandler{Repo: repo, Uploader: up, Logger: zap.NewNop()}
}

func createPayload() models.ServicePayload {
	return models.ServicePayload{
		SlipNo:         "42",
		Date:           "2024-03-05",
		CustomerName:   "Roshan Kumar",
		Contact:        "9345735945",
		ProductName:    "Trolley Bag",
		ServiceType:    "Stitching",
		WarrantyStatus: models.WarrantyClassNonWarranty,
		EstimateAmount: "450",
		Image:          base64.StdEncoding.EncodeToString([]byte("image-bytes")),
		ImageName:      "bag.jpg",
		ImageMimeType:  "image/jpeg",
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) ApiResponse {
	t.Helper()
	var resp ApiResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestCreateService(t *testing.T) {
	repo := &fakeServiceRepo{}
	up := &fakeUploader{}
	h := newServiceHandler(repo, up)

	rr := postJSON(t, h.CreateService, "/services", createPayload())
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	if repo.created == nil {
		t.Fatal("record never reached the store")
	}
	if repo.created.ServiceStatus != models.StatusNew {
		t.Errorf("new record status = %q, want %q", repo.created.ServiceStatus, models.StatusNew)
	}
	if !strings.HasPrefix(repo.created.ImageURL, "https://pub.example.com/") {
		t.Errorf("image url not taken from uploader: %q", repo.created.ImageURL)
	}
	if len(up.uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(up.uploads))
	}
}

func TestCreateServiceValidationFailureSkipsStoreAndUpload(t *testing.T) {
	repo := &fakeServiceRepo{}
	up := &fakeUploader{}
	h := newServiceHandler(repo, up)

	p := createPayload()
	p.ServiceType = ""
	p.Contact = "123"

	rr := postJSON(t, h.CreateService, "/services", p)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	resp := decodeResponse(t, rr)
	if resp.Success {
		t.Error("response marked success")
	}
	if len(resp.Fields) < 2 {
		t.Errorf("field errors = %v, want serviceType and contact", resp.Fields)
	}
	if repo.created != nil {
		t.Error("invalid payload reached the store")
	}
	if len(up.uploads) != 0 {
		t.Error("invalid payload reached the uploader")
	}
}

func TestCreateServiceRejectsBadBase64(t *testing.T) {
	repo := &fakeServiceRepo{}
	up := &fakeUploader{}
	h := newServiceHandler(repo, up)

	p := createPayload()
	p.Image = "not base64!!"

	rr := postJSON(t, h.CreateService, "/services", p)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if repo.created != nil || len(up.uploads) != 0 {
		t.Error("bad image payload was processed")
	}
}

func TestGetAllServicesAppliesQueryParams(t *testing.T) {
	repo := &fakeServiceRepo{records: []models.ServiceRecord{
		{ServiceID: "a", SlipNo: "1", ServiceStatus: models.StatusNew},
		{ServiceID: "b", SlipNo: "2", ServiceStatus: models.StatusCompleted},
		{ServiceID: "c", SlipNo: "3", ServiceStatus: models.StatusCompleted},
	}}
	h := newServiceHandler(repo, &fakeUploader{})

	req := httptest.NewRequest(http.MethodGet, "/services?status=Completed", nil)
	rr := httptest.NewRecorder()
	h.GetAllServices(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Success bool                   `json:"success"`
		Data    []models.ServiceRecord `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].ServiceID != "b" || resp.Data[1].ServiceID != "c" {
		t.Errorf("filtered records = %+v", resp.Data)
	}
}

func TestGetAllServicesRejectsUnknownSortKey(t *testing.T) {
	repo := &fakeServiceRepo{records: []models.ServiceRecord{
		{ServiceID: "a", ServiceStatus: models.StatusNew},
	}}
	h := newServiceHandler(repo, &fakeUploader{})

	req := httptest.NewRequest(http.MethodGet, "/services?sortKey=notAField", nil)
	rr := httptest.NewRecorder()
	h.GetAllServices(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestUpdateServiceKeepsIdentityFields(t *testing.T) {
	existing := models.ServiceRecord{
		ServiceID:      "svc-1",
		SlipNo:         "42",
		CustomerName:   "Roshan Kumar",
		Contact:        "9345735945",
		ProductName:    "Trolley Bag",
		ServiceType:    "Stitching",
		WarrantyStatus: models.WarrantyClassNonWarranty,
		EstimateAmount: "450",
		ImageURL:       "https://pub.example.com/bag.jpg",
		ServiceStatus:  models.StatusNew,
	}
	repo := &fakeServiceRepo{records: []models.ServiceRecord{existing}}
	up := &fakeUploader{}
	h := newServiceHandler(repo, up)

	update := models.ServicePayload{
		ServiceID:      "svc-1",
		CustomerName:   "Someone Else", // must not stick
		Contact:        "0000000000",
		WarrantyStatus: models.WarrantyClassNonWarranty,
		EstimateAmount: "500",
		ServiceStatus:  models.StatusInService,
		ServicemanName: "Arjun",
	}

	req := httptest.NewRequest(http.MethodPut, "/services", bytes.NewReader(mustMarshal(t, update)))
	rr := httptest.NewRecorder()
	h.UpdateService(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if repo.updated == nil {
		t.Fatal("update never reached the store")
	}
	if repo.updated.CustomerName != "Roshan Kumar" || repo.updated.Contact != "9345735945" {
		t.Errorf("identity fields overwritten: %q %q", repo.updated.CustomerName, repo.updated.Contact)
	}
	if repo.updated.SlipNo != "42" {
		t.Errorf("slip number changed: %q", repo.updated.SlipNo)
	}
	if repo.updated.ServiceStatus != models.StatusInService {
		t.Errorf("status not updated: %q", repo.updated.ServiceStatus)
	}
	if repo.updated.EstimateAmount != "500" {
		t.Errorf("estimate not updated: %q", repo.updated.EstimateAmount)
	}
	if repo.updated.ImageURL != existing.ImageURL {
		t.Errorf("image url changed without a new image: %q", repo.updated.ImageURL)
	}
	if len(up.deletes) != 0 {
		t.Error("image deleted without replacement")
	}
}

func TestUpdateServiceReplacesImage(t *testing.T) {
	existing := models.ServiceRecord{
		ServiceID:      "svc-1",
		SlipNo:         "42",
		CustomerName:   "Roshan Kumar",
		WarrantyStatus: models.WarrantyClassNonWarranty,
		EstimateAmount: "450",
		ImageURL:       "https://pub.example.com/old.jpg",
		ServiceStatus:  models.StatusNew,
	}
	repo := &fakeServiceRepo{records: []models.ServiceRecord{existing}}
	up := &fakeUploader{}
	h := newServiceHandler(repo, up)

	update := models.ServicePayload{
		ServiceID:      "svc-1",
		WarrantyStatus: models.WarrantyClassNonWarranty,
		EstimateAmount: "450",
		ServiceStatus:  models.StatusCompleted,
		Image:          base64.StdEncoding.EncodeToString([]byte("new-image")),
		ImageName:      "new.jpg",
		ImageMimeType:  "image/jpeg",
	}

	req := httptest.NewRequest(http.MethodPut, "/services", bytes.NewReader(mustMarshal(t, update)))
	rr := httptest.NewRecorder()
	h.UpdateService(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if len(up.uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(up.uploads))
	}
	if len(up.deletes) != 1 || up.deletes[0] != "https://pub.example.com/old.jpg" {
		t.Errorf("old image not deleted: %v", up.deletes)
	}
	if repo.updated.ImageURL == existing.ImageURL {
		t.Error("image url not replaced")
	}
}

func TestUpdateServiceUnknownID(t *testing.T) {
	repo := &fakeServiceRepo{}
	h := newServiceHandler(repo, &fakeUploader{})

	update := models.ServicePayload{
		ServiceID:      "missing",
		WarrantyStatus: models.WarrantyClassNonWarranty,
		EstimateAmount: "450",
		ServiceStatus:  models.StatusNew,
	}
	req := httptest.NewRequest(http.MethodPut, "/services", bytes.NewReader(mustMarshal(t, update)))
	rr := httptest.NewRecorder()
	h.UpdateService(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestLastSlipNumber(t *testing.T) {
	repo := &fakeServiceRepo{lastNo: 41}
	h := newServiceHandler(repo, &fakeUploader{})

	req := httptest.NewRequest(http.MethodGet, "/services/last-slip", nil)
	rr := httptest.NewRecorder()
	h.LastSlipNumber(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Data map[string]int64 `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data["lastSlipNumber"] != 41 {
		t.Errorf("lastSlipNumber = %d, want 41", resp.Data["lastSlipNumber"])
	}
	// The provisional next number is computed server-side; clients must
	// re-fetch it after every submission rather than incrementing locally.
	if resp.Data["nextSlipNumber"] != 42 {
		t.Errorf("nextSlipNumber = %d, want 42", resp.Data["nextSlipNumber"])
	}
}

func TestServiceTypesCatalog(t *testing.T) {
	h := newServiceHandler(&fakeServiceRepo{}, &fakeUploader{})

	req := httptest.NewRequest(http.MethodGet, "/services/types", nil)
	rr := httptest.NewRecorder()
	h.ServiceTypes(rr, req)

	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != len(models.ServiceTypeOptions) {
		t.Errorf("catalog size = %d, want %d", len(resp.Data), len(models.ServiceTypeOptions))
	}
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}
