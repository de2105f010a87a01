package sundowner

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/okavangolabs/sundowner/subscribers"
	"github.com/okavangolabs/sundowner/views"
)

const (
	maxImageWidth = 1200
	jpegQuality   = 82
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// processImage decodes an upload, scales it down to maxImageWidth if
// wider, and re-encodes it as JPEG. Returns metadata and the encoded
// bytes.
func processImage(src io.Reader, originalName string) (subscribers.Image, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return subscribers.Image{}, nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxImageWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return subscribers.Image{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return subscribers.Image{
		Filename:     slugifyFilename(originalName) + ".jpg",
		OriginalName: originalName,
		Width:        w,
		Height:       h,
		Size:         buf.Len(),
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
	}, buf.Bytes(), nil
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	slug := Slugify(base)
	if slug == "" {
		slug = "upload"
	}
	return slug
}

// ensureUniqueFilename appends a counter while the filename collides
// with the filesystem or stored metadata.
func (a *App) ensureUniqueFilename(img *subscribers.Image) {
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	base := strings.TrimSuffix(img.Filename, ".jpg")
	candidate := img.Filename
	counter := 1
	for {
		if _, err := os.Stat(filepath.Join(dir, candidate)); err == nil {
			counter++
			candidate = fmt.Sprintf("%s-%d.jpg", base, counter)
			continue
		}
		if _, err := a.Subs.GetImage(candidate); err == nil {
			counter++
			candidate = fmt.Sprintf("%s-%d.jpg", base, counter)
			continue
		}
		break
	}
	img.Filename = candidate
}

func (a *App) handleImageUpload(c echo.Context) error {
	if !IsOps(c) {
		return c.Redirect(http.StatusSeeOther, "/ops/")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if file.Size > maxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, data, err := processImage(src, file.Filename)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}

	a.ensureUniqueFilename(&img)

	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, img.Filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := a.Subs.SaveImage(img); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/ops/images/")
}

func (a *App) handleImageDelete(c echo.Context) error {
	if !IsOps(c) {
		return c.Redirect(http.StatusSeeOther, "/ops/")
	}

	filename := c.Param("filename")
	if filename == "" || filename != filepath.Base(filename) {
		return c.String(http.StatusBadRequest, "Filename required")
	}

	// File first, then metadata. A file already gone is not an error.
	_ = os.Remove(filepath.Join(a.staticDir, uploadsSubdir, filename))
	if err := a.Subs.DeleteImage(filename); err != nil && err != subscribers.ErrNotFound {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/ops/images/")
}

func (a *App) handleImageList(c echo.Context) error {
	if !IsOps(c) {
		return c.Redirect(http.StatusSeeOther, "/ops/")
	}
	return a.renderImageList(c)
}

func (a *App) renderImageList(c echo.Context) error {
	images, err := a.Subs.ListImages()
	if err != nil {
		return err
	}
	infos := make([]views.ImageInfo, 0, len(images))
	for _, img := range images {
		uploaded := img.UploadedAt
		if t, err := time.Parse(time.RFC3339, uploaded); err == nil {
			uploaded = t.Format("2006-01-02")
		}
		infos = append(infos, views.ImageInfo{
			Filename: img.Filename,
			URL:      "/public/" + uploadsSubdir + "/" + img.Filename,
			Width:    img.Width,
			Height:   img.Height,
			SizeKB:   int64(img.Size) / 1024,
			Uploaded: uploaded,
		})
	}
	return Render(c, views.OpsImages(a.opsShell("Images"), infos, CsrfToken(c)))
}
