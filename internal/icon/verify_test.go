package icon

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVerifyAcceptsGeneratedIcon(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.png")
	if err := Create(192, p); err != nil {
		t.Fatal(err)
	}
	if err := Verify(p, 192); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongSize(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.png")
	if err := Create(192, p); err != nil {
		t.Fatal(err)
	}
	err := Verify(p, 512)
	if err == nil || !strings.Contains(err.Error(), "want 512x512") {
		t.Errorf("Verify error = %v, want size mismatch", err)
	}
}

func TestVerifyRejectsWrongColors(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 192, 192))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	err = Verify(p, 192)
	if err == nil || !strings.Contains(err.Error(), "corner") {
		t.Errorf("Verify error = %v, want corner mismatch", err)
	}
}

func TestVerifyRejectsNonPNG(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.png")
	if err := os.WriteFile(p, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Verify(p, 192); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("Verify error = %v, want decode error", err)
	}
}
