package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage guarda fotos de perfil, comprovantes de pagamento e fotos de
// galeria. Contrato mínimo: recebe bytes e um prefixo, devolve URL pública.
type S3Storage struct {
	BucketName string
	Region     string
	Client     *s3.Client
}

func NewS3Storage(ctx context.Context, bucketName, region string) (*S3Storage, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is not set")
	}
	if region == "" {
		region = "eu-west-1"
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %v", err)
	}

	return &S3Storage{
		BucketName: bucketName,
		Region:     region,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

// Upload envia o arquivo e devolve a URL pública. O nome final leva um
// timestamp para não colidir com uploads anteriores do mesmo arquivo.
func (s *S3Storage) Upload(ctx context.Context, prefix, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%d_%s", prefix, time.Now().Unix(), filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.BucketName, s.Region, key), nil
}
