package repository

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	bCtx "github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain/artifact"
)

const (
	defaultRegion    = "us-east-1"
	defaultUrlExpiry = 24 * time.Hour
)

type S3WriterRepoCfg struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// UrlExpiry is the lifetime of the presigned download url
	UrlExpiry time.Duration
	Timeout   time.Duration
}

type s3WriterRepo struct {
	client     *minio.Client
	bucketName string
	region     string
	urlExpiry  time.Duration
	ctxTimeout time.Duration

	initOnce sync.Once
	initErr  error
}

func NewS3WriterRepo(cfg *S3WriterRepoCfg) (artifact.WriterRepository, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = defaultRegion
	}
	expiry := cfg.UrlExpiry
	if expiry <= 0 {
		expiry = defaultUrlExpiry
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &s3WriterRepo{
		client:     client,
		bucketName: bucket,
		region:     region,
		urlExpiry:  expiry,
		ctxTimeout: cfg.Timeout,
	}, nil
}

func (r *s3WriterRepo) Name() string {
	return "s3"
}

func (r *s3WriterRepo) ensureBucket(c bCtx.Ctx) error {
	r.initOnce.Do(func() {
		exists, err := r.client.BucketExists(c, r.bucketName)
		if err != nil {
			r.initErr = err
			return
		}
		if exists {
			return
		}
		r.initErr = r.client.MakeBucket(c, r.bucketName, minio.MakeBucketOptions{Region: r.region})
	})
	return r.initErr
}

// Store uploads the object and returns a presigned GET url
func (r *s3WriterRepo) Store(c bCtx.Ctx, key string, body io.Reader, size int64, contentType string) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("key is required")
	}

	ctx := c
	if r.ctxTimeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(c, r.ctxTimeout)
		defer cancel()
	}

	if err := r.ensureBucket(ctx); err != nil {
		ctx.WithFields(log.Fields{
			"bucket": r.bucketName,
			"err":    err,
		}).Error("ensureBucket failed")
		return "", fmt.Errorf("ensure bucket: %w", err)
	}

	if _, err := r.client.PutObject(ctx, r.bucketName, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		ctx.WithFields(log.Fields{
			"key": key,
			"err": err,
		}).Error("client.PutObject failed")
		return "", err
	}

	u, err := r.client.PresignedGetObject(ctx, r.bucketName, key, r.urlExpiry, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"key": key,
			"err": err,
		}).Error("client.PresignedGetObject failed")
		return "", err
	}
	return u.String(), nil
}
