package slip

import (
	"fmt"
	"strings"
)

// Format is a physical page size in millimeters, portrait.
type Format struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4 = Format{Name: "a4", Width: 210, Height: 297}
	A5 = Format{Name: "a5", Width: 148, Height: 210}
)

// ParseFormat resolves a page-format selector from a request.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a4":
		return A4, nil
	case "a5":
		return A5, nil
	}
	return Format{}, fmt.Errorf("unsupported page format %q", s)
}

// Placement is the size and offset of the captured slip image on the page,
// all in millimeters.
type Placement struct {
	Width  float64
	Height float64
	X      float64
	Y      float64
}

// Fit scales a capture of the given pixel dimensions to fill the page width,
// rescaling to the page height if it would overflow, and centers the result.
// The aspect ratio is always preserved: fit inside, never crop or stretch.
func Fit(capturedW, capturedH int, f Format) (Placement, error) {
	if capturedW <= 0 || capturedH <= 0 {
		return Placement{}, fmt.Errorf("invalid capture dimensions %dx%d", capturedW, capturedH)
	}
	aspect := float64(capturedW) / float64(capturedH)

	imgW := f.Width
	imgH := imgW / aspect
	if imgH > f.Height {
		imgH = f.Height
		imgW = imgH * aspect
	}

	return Placement{
		Width:  imgW,
		Height: imgH,
		X:      (f.Width - imgW) / 2,
		Y:      (f.Height - imgH) / 2,
	}, nil
}

// Filename derives the deterministic download name for a slip document.
func Filename(customerName, slipNo string) string {
	return strings.ReplaceAll(customerName, " ", "_") + "_" + slipNo + ".pdf"
}
