package localfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePathRejectsTraversal(t *testing.T) {
	bad := []string{
		"",
		"   ",
		"../secret",
		"a/../../etc/passwd",
		"a/..",
		"..",
		"/absolute/path",
		"/etc/passwd",
		`a\b`,
		`..\windows`,
	}
	for _, p := range bad {
		if err := ValidatePath(p); !errors.Is(err, ErrUnsafePath) {
			t.Errorf("ValidatePath(%q) = %v, want ErrUnsafePath", p, err)
		}
	}

	good := []string{"emp123", "emp123/avatar.webp", "a/b/c.png", "file.with.dots.pdf"}
	for _, p := range good {
		if err := ValidatePath(p); err != nil {
			t.Errorf("ValidatePath(%q) = %v, want nil", p, err)
		}
	}
}

func TestResolveStaysUnderRoot(t *testing.T) {
	t.Setenv("UPLOAD_ROOT", filepath.Join(t.TempDir(), "uploads"))

	abs, err := Resolve("avatars", "emp1/foto.webp")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rel, err := filepath.Rel(StorageRoot(), abs); err != nil || rel != filepath.Join("avatars", "emp1", "foto.webp") {
		t.Errorf("Resolve keluar dari root: %s (rel=%s, err=%v)", abs, rel, err)
	}

	if _, err := Resolve("avatars", "../../../etc/passwd"); !errors.Is(err, ErrUnsafePath) {
		t.Errorf("Resolve traversal lolos: %v", err)
	}
	if _, err := Resolve("../avatars", "x"); !errors.Is(err, ErrUnsafePath) {
		t.Errorf("Resolve bucket traversal lolos: %v", err)
	}
}

func TestContentTypeByExt(t *testing.T) {
	cases := map[string]string{
		"a.webp":   "image/webp",
		"b.PNG":    "image/png",
		"c.pdf":    "application/pdf",
		"d.bin":    "application/octet-stream",
		"noext":    "application/octet-stream",
		"e.txt":    "text/plain; charset=utf-8",
		"f/g.jpeg": "image/jpeg",
	}
	for in, want := range cases {
		if got := ContentTypeByExt(in); got != want {
			t.Errorf("ContentTypeByExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteAndRemove(t *testing.T) {
	t.Setenv("UPLOAD_ROOT", t.TempDir())

	abs, err := Resolve("avatars", "emp9/a.txt")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := WriteFile(abs, []byte("isi")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if data, err := os.ReadFile(abs); err != nil || string(data) != "isi" {
		t.Fatalf("ReadFile = %q, %v", data, err)
	}

	// hapus direktori → rekursif
	dir := filepath.Dir(abs)
	if err := Remove(dir); err != nil {
		t.Fatalf("Remove dir: %v", err)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("direktori masih ada setelah Remove")
	}

	// hapus ulang → os.ErrNotExist
	if err := Remove(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Remove kedua = %v, want os.ErrNotExist", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := SanitizeFilename("foto saya (1).png"); got != "foto_saya_1_.png" {
		t.Errorf("SanitizeFilename = %q", got)
	}
}
