package repository

import (
	"regexp"
	"strings"

	"roshanservice/models"
)

var (
	datePrefix   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	driveFileID  = regexp.MustCompile(`drive\.google\.com/(?:file/d/|open\?id=)([a-zA-Z0-9_-]+)`)
	drivePattern = "drive.google.com"
)

// NormalizeDate validates a stored date value. Anything not starting with
// YYYY-MM-DD is treated as absent, never as a parse error.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if datePrefix.MatchString(s) {
		return s[:10]
	}
	return ""
}

// DirectImageURL rewrites a Google Drive viewer URL into its direct,
// embeddable form. Other URLs pass through untouched.
func DirectImageURL(url string) string {
	if !strings.Contains(url, drivePattern) {
		return url
	}
	if m := driveFileID.FindStringSubmatch(url); m != nil {
		return "https://drive.google.com/uc?export=view&id=" + m[1]
	}
	return url
}

// normalizeRecord pins a freshly loaded row to the strict record shape so
// loosely-typed stored values never reach the query or lifecycle layers.
func normalizeRecord(rec *models.ServiceRecord) {
	rec.Date = NormalizeDate(rec.Date)
	rec.WarrantyDate = NormalizeDate(rec.WarrantyDate)
	rec.ImageURL = DirectImageURL(rec.ImageURL)
}
