// Package render synthesizes the completion certificate image. The
// layout follows the classic landscape diploma: double border, centered
// text stack, badge at the foot.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	certWidth  = 1000
	certHeight = 700
)

var (
	indigo = color.NRGBA{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF}
	gold   = color.NRGBA{R: 0xFB, G: 0xBF, B: 0x24, A: 0xFF}
	ink    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	slate  = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
	near   = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF}
	faint  = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
)

// CertificateRenderer draws completion certificates as PNG images. A
// TTF font path may be supplied; when it is empty or unreadable the
// renderer falls back to a built-in bitmap face so rendering never
// depends on system fonts.
type CertificateRenderer struct {
	large  font.Face
	medium font.Face
	small  font.Face
}

func NewCertificateRenderer(fontPath string) *CertificateRenderer {
	r := &CertificateRenderer{
		large:  basicfont.Face7x13,
		medium: basicfont.Face7x13,
		small:  basicfont.Face7x13,
	}

	if fontPath == "" {
		return r
	}

	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return r
	}
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return r
	}

	face := func(size float64) font.Face {
		return truetype.NewFace(parsed, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	}
	r.large = face(60)
	r.medium = face(40)
	r.small = face(25)
	return r
}

// Render produces the certificate PNG for the given display strings.
func (r *CertificateRenderer) Render(displayName, subjectName, issuedDate string) ([]byte, error) {
	dc := gg.NewContext(certWidth, certHeight)

	// White canvas.
	dc.SetColor(color.White)
	dc.Clear()

	// Outer indigo border, inner gold border.
	dc.SetColor(indigo)
	dc.SetLineWidth(10)
	dc.DrawRectangle(20, 20, certWidth-40, certHeight-40)
	dc.Stroke()

	dc.SetColor(gold)
	dc.SetLineWidth(5)
	dc.DrawRectangle(40, 40, certWidth-80, certHeight-80)
	dc.Stroke()

	cx := float64(certWidth) / 2

	dc.SetFontFace(r.large)
	dc.SetColor(ink)
	dc.DrawStringAnchored("CERTIFICATE OF COMPLETION", cx, 150, 0.5, 0.5)

	dc.SetFontFace(r.small)
	dc.SetColor(slate)
	dc.DrawStringAnchored("This is to certify that", cx, 250, 0.5, 0.5)

	dc.SetFontFace(r.large)
	dc.SetColor(indigo)
	dc.DrawStringAnchored(strings.ToUpper(displayName), cx, 320, 0.5, 0.5)

	dc.SetFontFace(r.small)
	dc.SetColor(slate)
	dc.DrawStringAnchored("Has successfully completed the course", cx, 400, 0.5, 0.5)

	dc.SetFontFace(r.medium)
	dc.SetColor(near)
	dc.DrawStringAnchored(subjectName, cx, 460, 0.5, 0.5)

	dc.SetFontFace(r.small)
	dc.SetColor(faint)
	dc.DrawStringAnchored("Issued on: "+issuedDate, cx, 580, 0.5, 0.5)

	// Gold badge with the StudyBuddy monogram.
	dc.SetColor(gold)
	dc.DrawCircle(cx, 650, 40)
	dc.Fill()

	dc.SetFontFace(r.medium)
	dc.SetColor(color.White)
	dc.DrawStringAnchored("SB", cx, 650, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode certificate png: %w", err)
	}
	return buf.Bytes(), nil
}
