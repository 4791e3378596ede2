package handlers

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestStoredFormatFollowsReencodedBytes(t *testing.T) {
	// a large PNG is re-encoded as JPEG, so it may not keep its extension
	ext, contentType := storedFormat(".png", "image/png", true)
	if ext != ".jpg" || contentType != "image/jpeg" {
		t.Fatalf("re-encoded png stored as %s/%s", ext, contentType)
	}

	ext, contentType = storedFormat(".png", "image/png", false)
	if ext != ".png" || contentType != "image/png" {
		t.Fatalf("untouched png stored as %s/%s", ext, contentType)
	}

	ext, contentType = storedFormat(".jpg", "image/jpeg", true)
	if ext != ".jpg" || contentType != "image/jpeg" {
		t.Fatalf("re-encoded jpeg stored as %s/%s", ext, contentType)
	}
}

func TestDecodePhoto(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	data := buf.Bytes()

	img, raw, err := decodePhoto(bytes.NewReader(data), "image/png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
	if !bytes.Equal(raw, data) {
		t.Fatalf("original bytes not preserved")
	}

	if _, _, err := decodePhoto(bytes.NewReader([]byte("not an image")), "image/jpeg"); err == nil {
		t.Fatalf("garbage decoded")
	}
}
