package slip

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"roshanservice/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrSnapshotUnavailable means the slip composition could not be captured.
// No partial document is ever produced on this path.
var ErrSnapshotUnavailable = errors.New("slip snapshot unavailable")

const (
	// captureWidth is the fixed CSS width the slip is composed at.
	captureWidth = 800
	// oversample is the device scale factor for the capture; 2x keeps the
	// slip text legible after the raster is placed on the page.
	oversample = 2

	mmPerInch = 25.4
)

// Document is a rendered slip ready for download.
type Document struct {
	Filename string
	Content  []byte
}

// Renderer captures a composed slip with headless Chrome and paginates the
// capture onto a single fixed-size page. The visual composition is a
// single-writer resource, so renders are serialized internally; callers must
// still not retrigger a render for the same record before the prior one
// resolves.
type Renderer struct {
	tmpl *template.Template
	mu   sync.Mutex
}

// NewRenderer loads the slip HTML template.
func NewRenderer(templatePath string) (*Renderer, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("load slip template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render composes the slip for data, rasterizes it at the oversampled scale,
// fits and centers the capture on a page of the given format, and returns the
// resulting single-page PDF.
func (r *Renderer) Render(ctx context.Context, data *models.SlipData, f Format) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var composed bytes.Buffer
	if err := r.tmpl.Execute(&composed, data); err != nil {
		return nil, fmt.Errorf("%w: compose: %v", ErrSnapshotUnavailable, err)
	}

	tmpDir := os.TempDir()
	stamp := time.Now().Format("20060102150405")

	slipHTML := filepath.Join(tmpDir, "slip_"+stamp+".html")
	if err := os.WriteFile(slipHTML, composed.Bytes(), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(slipHTML)

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	// Capture the snapshot. WaitReady guards the precondition: the slip root
	// must be composed before anything is rasterized.
	var shot []byte
	err := chromedp.Run(cctx,
		chromedp.EmulateViewport(captureWidth, 600, chromedp.EmulateScale(oversample)),
		chromedp.Navigate("file://"+slipHTML),
		chromedp.WaitReady("#printable-slip", chromedp.ByID),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: capture: %v", ErrSnapshotUnavailable, err)
	}

	shotCfg, err := png.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("%w: decode capture: %v", ErrSnapshotUnavailable, err)
	}

	place, err := Fit(shotCfg.Width, shotCfg.Height, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
	}

	pageHTML := filepath.Join(tmpDir, "slip_page_"+stamp+".html")
	if err := os.WriteFile(pageHTML, []byte(placementPage(shot, f, place)), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(pageHTML)

	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate("file://"+pageHTML),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(f.Width / mmPerInch).
				WithPaperHeight(f.Height / mmPerInch).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return &Document{
		Filename: Filename(data.Record.CustomerName, data.Record.SlipNo),
		Content:  pdfBuf,
	}, nil
}

// placementPage builds the single-page wrapper that positions the capture at
// the computed millimeter offsets.
func placementPage(shot []byte, f Format, place Placement) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
@page {
	size: %.0fmm %.0fmm;
	margin: 0;
}
body {
	margin: 0;
	padding: 0;
}
img.slip {
	position: absolute;
	left: %.2fmm;
	top: %.2fmm;
	width: %.2fmm;
	height: %.2fmm;
}
</style>
</head>
<body><img class="slip" src="data:image/png;base64,%s"></body></html>`,
		f.Width, f.Height,
		place.X, place.Y, place.Width, place.Height,
		base64.StdEncoding.EncodeToString(shot))
}
