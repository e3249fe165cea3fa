// File: autoconecta/models/imagebatch.go
package models

import (
	"fmt"
	"io"
)

const (
	// MaxImagenes is the hard cap on images per listing.
	MaxImagenes = 5
	// MaxImagenSize is the per-image size limit (5 MiB).
	MaxImagenSize = 5 * 1024 * 1024
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// ImageFile is one image selected for upload.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ImageBatch is the ordered set of images selected for a listing. Its
// invariants (count, format, size) are enforced at the moment of Add,
// never re-checked at submit time.
type ImageBatch struct {
	files []ImageFile
}

// Add appends an image to the batch, rejecting it if the batch is full
// or the image violates the format/size constraints.
func (b *ImageBatch) Add(f ImageFile) error {
	if len(b.files) >= MaxImagenes {
		return fmt.Errorf("solo puedes tener máximo %d imágenes, ya tienes %d", MaxImagenes, len(b.files))
	}
	if !allowedImageTypes[f.ContentType] {
		return fmt.Errorf("solo se permiten imágenes en formato JPG, PNG o WebP")
	}
	if f.Size > MaxImagenSize {
		return fmt.Errorf("cada imagen debe pesar menos de 5MB")
	}
	b.files = append(b.files, f)
	return nil
}

// Remove deletes the image at index i, preserving order.
func (b *ImageBatch) Remove(i int) {
	if i < 0 || i >= len(b.files) {
		return
	}
	b.files = append(b.files[:i], b.files[i+1:]...)
}

// Clear empties the batch.
func (b *ImageBatch) Clear() {
	b.files = nil
}

// Files returns the images in selection order.
func (b *ImageBatch) Files() []ImageFile {
	return b.files
}

func (b *ImageBatch) Len() int {
	return len(b.files)
}
