package media

import (
	"context"
	"errors"
	"testing"

	"autoconecta/models"
)

type mockStorage struct {
	UploadFunc func(ctx context.Context, file models.ImageFile) (string, error)
	DeleteFunc func(ctx context.Context, publicID string) error
}

func (m *mockStorage) Upload(ctx context.Context, file models.ImageFile) (string, error) {
	return m.UploadFunc(ctx, file)
}

func (m *mockStorage) Delete(ctx context.Context, publicID string) error {
	return m.DeleteFunc(ctx, publicID)
}

func files(names ...string) []models.ImageFile {
	out := make([]models.ImageFile, 0, len(names))
	for _, n := range names {
		out = append(out, models.ImageFile{Name: n, ContentType: "image/jpeg", Size: 10})
	}
	return out
}

func TestUploadAll_OrderPreserved(t *testing.T) {
	var seen []string
	storage := &mockStorage{
		UploadFunc: func(ctx context.Context, f models.ImageFile) (string, error) {
			seen = append(seen, f.Name)
			return "https://res.example/" + f.Name, nil
		},
	}
	u := &BatchUploader{Storage: storage}

	urls, err := u.UploadAll(context.Background(), files("f1.jpg", "f2.jpg", "f3.jpg"))
	if err != nil {
		t.Fatalf("UploadAll returned error: %v", err)
	}

	want := []string{"https://res.example/f1.jpg", "https://res.example/f2.jpg", "https://res.example/f3.jpg"}
	if len(urls) != len(want) {
		t.Fatalf("UploadAll = %v; want %v", urls, want)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("urls[%d] = %q; want %q", i, urls[i], want[i])
		}
	}
	if len(seen) != 3 || seen[0] != "f1.jpg" || seen[1] != "f2.jpg" || seen[2] != "f3.jpg" {
		t.Errorf("uploads issued in order %v; want input order", seen)
	}
}

func TestUploadAll_AbortsOnFirstFailure(t *testing.T) {
	wantErr := errors.New("host rejected the file")
	var attempted []string
	storage := &mockStorage{
		UploadFunc: func(ctx context.Context, f models.ImageFile) (string, error) {
			attempted = append(attempted, f.Name)
			if f.Name == "f2.jpg" {
				return "", wantErr
			}
			return "https://res.example/" + f.Name, nil
		},
	}
	u := &BatchUploader{Storage: storage}

	urls, err := u.UploadAll(context.Background(), files("f1.jpg", "f2.jpg", "f3.jpg"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("UploadAll error = %v; want %v", err, wantErr)
	}
	if urls != nil {
		t.Errorf("UploadAll = %v on failure; partial results must be discarded", urls)
	}
	// f3 is never attempted after f2 fails.
	if len(attempted) != 2 || attempted[1] != "f2.jpg" {
		t.Errorf("attempted = %v; want [f1.jpg f2.jpg]", attempted)
	}
}

func TestUploadAll_EmptyBatchRejected(t *testing.T) {
	u := &BatchUploader{Storage: &mockStorage{}}
	if _, err := u.UploadAll(context.Background(), nil); err == nil {
		t.Error("UploadAll accepted an empty batch")
	}
}
