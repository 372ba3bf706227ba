package supabase

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	storage "github.com/supabase-community/storage-go"
	"kids-burger-backend/internal/models"
)

type objectClient interface {
	DownloadFile(bucketId string, relativePath string, urlOptions ...storage.UrlOptions) ([]byte, error)
	UploadFile(bucketId string, relativePath string, data io.Reader, fileOptions ...storage.FileOptions) (storage.FileUploadResponse, error)
}

// StorageClient serves ingredient artwork from a Supabase storage bucket.
type StorageClient struct {
	client  objectClient
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, key, bucket string) *StorageClient {
	baseURL := strings.TrimRight(supabaseURL, "/")
	return &StorageClient{
		client:  storage.NewClient(baseURL+"/storage/v1", key, nil),
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// ObjectPath maps an ingredient to its object in the bucket. Ingredients
// whose image is an absolute URL are hosted elsewhere and have no object.
func ObjectPath(ing models.Ingredient) (string, bool) {
	if ing.ImageURL == "" {
		return "", false
	}
	u, err := url.Parse(ing.ImageURL)
	if err != nil || u.IsAbs() {
		return "", false
	}
	p := strings.TrimPrefix(u.Path, "/")
	p = strings.TrimPrefix(p, "images/")
	if p == "" {
		return "", false
	}
	return "ingredients/" + p, true
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DownloadFile(storagePath string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	return data, nil
}

// UploadFile stores data at storagePath, replacing any existing object,
// and returns its public URL.
func (s *StorageClient) UploadFile(storagePath, contentType string, data []byte) (string, error) {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}
