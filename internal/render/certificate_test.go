package render

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRenderProducesDecodablePNG(t *testing.T) {
	r := NewCertificateRenderer("")

	data, err := r.Render("Ada Lovelace", "Web Development (Modular)", "August 28, 2026")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("rendered image is empty")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1000 || bounds.Dy() != 700 {
		t.Errorf("unexpected dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderMissingFontFallsBack(t *testing.T) {
	// A bogus font path must not fail rendering, only drop to the
	// built-in face.
	r := NewCertificateRenderer("/nonexistent/font.ttf")

	data, err := r.Render("Ada", "CSS Fundamentals", "August 28, 2026")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
}
