package filestorage

import (
	"context"
	"fmt"
	"io"
	"work-tools-backend/config"
	s3client "work-tools-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Хранилище содержимого вложений. Загрузка файлов выполняется внешним
// конвейером, ядро только отдает сохраненные объекты по имени.
type Provider interface {
	GetFile(ctx context.Context, spaceID, storedName string) ([]byte, error)
	MakeSpaceBucket(ctx context.Context, spaceID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) GetFile(ctx context.Context, spaceID, storedName string) ([]byte, error) {
	bucketName := i.getSpaceBucketName(spaceID)
	object, err := i.s3client.GetObject(ctx, bucketName, storedName, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка получения файла %v из хранилища", storedName)
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения файла %v из хранилища", storedName)
	}
	return body, nil
}

func (i impl) MakeSpaceBucket(ctx context.Context, spaceID string) error {
	bucketName := i.getSpaceBucketName(spaceID)
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) getSpaceBucketName(spaceID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, spaceID)
}
