package storage

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	PublicURL   string
}

func NewMinioStorage(minioClient *minio.Client, bucketName, publicURL string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		PublicURL:   publicURL,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, objectName string, data []byte) (string, error) {
	contentType := mime.TypeByExtension(filepath.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return fmt.Sprintf("%s/%s/%s", m.PublicURL, m.BucketName, objectName), nil
}
