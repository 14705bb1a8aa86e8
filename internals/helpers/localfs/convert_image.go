package localfs

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"simbina_backend/internals/configs"
)

// bucket yang isinya selalu gambar → dikonversi ke WebP saat upload
var imageBuckets = map[string]struct{}{
	"avatars":    {},
	"signatures": {},
}

func IsImageBucket(bucket string) bool {
	_, ok := imageBuckets[strings.ToLower(bucket)]
	return ok
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(configs.GetEnv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(configs.GetEnv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

// decodeImage: sniff MIME dulu, fallback ke ekstensi.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format gambar tidak didukung: %s", ct)
}

// ConvertToWebP: decode → downscale keep-aspect → encode lossy WebP.
// Batas dan quality bisa dioverride via ENV (IMAGE_WEBP_MAX_W/MAX_H/QUALITY).
func ConvertToWebP(data []byte, filename string) ([]byte, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, err
	}

	maxW := envInt("IMAGE_WEBP_MAX_W", 1600)
	maxH := envInt("IMAGE_WEBP_MAX_H", 1600)
	quality := envFloat("IMAGE_WEBP_QUALITY", 80)

	b := img.Bounds()
	if b.Dx() > maxW || b.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WebPFilename mengganti ekstensi file apa pun menjadi .webp.
func WebPFilename(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + ".webp"
}
