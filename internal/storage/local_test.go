package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalPutAndDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads")

	res, err := l.Put(context.Background(), strings.NewReader("fake image bytes"), PutInput{
		Filename:    "Product Photo 1.PNG",
		ContentType: "image/png",
		Size:        16,
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if !strings.HasPrefix(res.Key, "product-photo-1-") || !strings.HasSuffix(res.Key, ".png") {
		t.Errorf("Key = %q, want slugged name with .png extension", res.Key)
	}
	if res.URL != "/uploads/"+res.Key {
		t.Errorf("URL = %q", res.URL)
	}

	b, err := os.ReadFile(filepath.Join(dir, res.Key))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(b) != "fake image bytes" {
		t.Errorf("stored content = %q", b)
	}

	if err := l.Delete(context.Background(), res.Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, res.Key)); !os.IsNotExist(err) {
		t.Error("file should be gone after Delete")
	}
}

func TestLocalPutRejectsUnknownExtension(t *testing.T) {
	l := NewLocal(t.TempDir(), "/uploads")

	res, err := l.Put(context.Background(), strings.NewReader("x"), PutInput{Filename: "evil.exe"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if strings.Contains(res.Key, ".") {
		t.Errorf("unknown extension should be dropped, got %q", res.Key)
	}
}
