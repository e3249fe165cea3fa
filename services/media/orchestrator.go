package media

import (
	"context"
	"fmt"

	"autoconecta/models"
)

// BatchUploader uploads a bounded batch of images one at a time. The
// loop is deliberately sequential: it bounds concurrent load on the
// media host and guarantees the output URLs correspond index-for-index
// with the input files.
type BatchUploader struct {
	Storage StorageService
}

// UploadAll uploads every file in order and returns their URLs in the
// same order. The batch is all-or-nothing: the first failure aborts the
// loop, remaining files are never attempted, and URLs collected so far
// are discarded rather than returned.
func (u *BatchUploader) UploadAll(ctx context.Context, files []models.ImageFile) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("media: empty upload batch")
	}
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := u.Storage.Upload(ctx, f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
