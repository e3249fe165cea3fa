package models

import (
	"fmt"
	"testing"
)

func testImage(name, contentType string, size int64) ImageFile {
	return ImageFile{Name: name, ContentType: contentType, Size: size}
}

func TestImageBatch_AddEnforcesLimit(t *testing.T) {
	var batch ImageBatch
	for i := 0; i < MaxImagenes; i++ {
		name := fmt.Sprintf("foto%d.jpg", i)
		if err := batch.Add(testImage(name, "image/jpeg", 1024)); err != nil {
			t.Fatalf("Add(%s) failed: %v", name, err)
		}
	}
	if batch.Len() != MaxImagenes {
		t.Fatalf("Len() = %d; want %d", batch.Len(), MaxImagenes)
	}

	if err := batch.Add(testImage("extra.jpg", "image/jpeg", 1024)); err == nil {
		t.Error("Add() accepted a sixth image")
	}
	if batch.Len() != MaxImagenes {
		t.Errorf("Len() = %d after rejected add; want %d", batch.Len(), MaxImagenes)
	}
}

func TestImageBatch_AddEnforcesFormat(t *testing.T) {
	allowed := []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}
	for _, ct := range allowed {
		var batch ImageBatch
		if err := batch.Add(testImage("foto", ct, 1024)); err != nil {
			t.Errorf("Add() rejected allowed format %q: %v", ct, err)
		}
	}

	rejected := []string{"image/gif", "application/pdf", "text/plain", ""}
	for _, ct := range rejected {
		var batch ImageBatch
		if err := batch.Add(testImage("foto", ct, 1024)); err == nil {
			t.Errorf("Add() accepted format %q", ct)
		}
	}
}

func TestImageBatch_AddEnforcesSize(t *testing.T) {
	var batch ImageBatch
	if err := batch.Add(testImage("grande.png", "image/png", MaxImagenSize+1)); err == nil {
		t.Error("Add() accepted an oversized image")
	}
	if err := batch.Add(testImage("justo.png", "image/png", MaxImagenSize)); err != nil {
		t.Errorf("Add() rejected an image at the size limit: %v", err)
	}
}

func TestImageBatch_RemovePreservesOrder(t *testing.T) {
	var batch ImageBatch
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		if err := batch.Add(testImage(name, "image/jpeg", 10)); err != nil {
			t.Fatalf("Add(%s) failed: %v", name, err)
		}
	}

	batch.Remove(1)
	files := batch.Files()
	if len(files) != 2 || files[0].Name != "a.jpg" || files[1].Name != "c.jpg" {
		t.Errorf("Files() after Remove(1) = %v; want [a.jpg c.jpg]", files)
	}

	// Out-of-range removals are no-ops.
	batch.Remove(-1)
	batch.Remove(5)
	if batch.Len() != 2 {
		t.Errorf("Len() = %d after out-of-range removes; want 2", batch.Len())
	}
}

func TestImageBatch_Clear(t *testing.T) {
	var batch ImageBatch
	if err := batch.Add(testImage("a.jpg", "image/jpeg", 10)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	batch.Clear()
	if batch.Len() != 0 {
		t.Errorf("Len() = %d after Clear; want 0", batch.Len())
	}
	// The cleared batch accepts new images again.
	if err := batch.Add(testImage("b.jpg", "image/jpeg", 10)); err != nil {
		t.Errorf("Add after Clear failed: %v", err)
	}
}
