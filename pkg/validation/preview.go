package validation

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cadastrobot/pkg/models"
)

// PreviewMaxSide bounds both thumbnail dimensions.
const PreviewMaxSide = 150

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Preview is a PNG thumbnail of an accepted image upload.
type Preview struct {
	File   models.FileInfo
	Width  int
	Height int
	PNG    []byte
}

// BuildPreview decodes an image upload and scales it to fit
// PreviewMaxSide x PreviewMaxSide. Non-image files yield (nil, nil).
func BuildPreview(f models.FileInfo, r io.Reader) (*Preview, error) {
	if !IsImage(f) {
		return nil, nil
	}

	src, _, err := image.Decode(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Name, err)
	}

	w, h := fit(src.Bounds().Dx(), src.Bounds().Dy(), PreviewMaxSide)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}

	return &Preview{File: f, Width: w, Height: h, PNG: buf.Bytes()}, nil
}

// DataURL embeds the thumbnail for use as an img src.
func (p *Preview) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(p.PNG)
}

func (p *Preview) Caption() string {
	return fmt.Sprintf("Arquivo: %s\nTamanho: %s", p.File.Name, FormatSize(p.File.Size))
}

// FormatSize renders a byte count in megabytes with two decimals, pt-BR style.
func FormatSize(n int64) string {
	return printer.Sprintf("%.2f MB", float64(n)/1024/1024)
}

// fit scales w x h down to fit a limit x limit box keeping the aspect ratio.
// Smaller images are left as they are.
func fit(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		nh := h * limit / w
		if nh < 1 {
			nh = 1
		}
		return limit, nh
	}
	nw := w * limit / h
	if nw < 1 {
		nw = 1
	}
	return nw, limit
}
