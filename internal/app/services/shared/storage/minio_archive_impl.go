package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

var (
	minioArchiveInstance contracts.DocumentArchive
	onceMinioArchive     sync.Once
)

// minioArchive keeps official SADT PDFs so reprints do not hit the document
// service again. Local previews are never archived; they are rebuilt from the
// audit record on demand.
type minioArchive struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioArchive(minioClient *minio.Client, bucketName string) contracts.DocumentArchive {
	onceMinioArchive.Do(func() {
		minioArchiveInstance = &minioArchive{
			MinioClient: minioClient,
			BucketName:  bucketName,
		}
	})
	return minioArchiveInstance
}

func (m *minioArchive) Store(ctx context.Context, appointmentID int64, pdf []byte) error {
	objectName := archiveObjectName(appointmentID)
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(pdf),
		int64(len(pdf)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationPDF,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}

func (m *minioArchive) Fetch(ctx context.Context, appointmentID int64) ([]byte, error) {
	objectName := archiveObjectName(appointmentID)
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	defer object.Close()

	pdf, err := io.ReadAll(object)
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return pdf, nil
}

func archiveObjectName(appointmentID int64) string {
	return fmt.Sprintf("%s%d.pdf", constvars.SadtArchiveObjectPrefix, appointmentID)
}
