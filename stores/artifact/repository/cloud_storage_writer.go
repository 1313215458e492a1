package repository

import (
	"io"
	"net/url"
	"time"

	"cloud.google.com/go/storage"

	bCtx "github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain/artifact"
)

const defaultUploadTimeout = 30 * time.Second

type CloudStorageWriterRepoCfg struct {
	Timeout    time.Duration
	Client     *storage.Client
	BucketName string
	// Url is the public base url of the bucket
	Url string
}

type cloudStorageWriterRepo struct {
	client     *storage.Client
	bucketName string
	ctxTimeout time.Duration
	baseUrl    *url.URL
}

func NewCloudStorageWriterRepo(cfg *CloudStorageWriterRepoCfg) (artifact.WriterRepository, error) {
	baseUrl, err := url.Parse(cfg.Url)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultUploadTimeout
	}
	return &cloudStorageWriterRepo{
		client:     cfg.Client,
		bucketName: cfg.BucketName,
		ctxTimeout: timeout,
		baseUrl:    baseUrl,
	}, nil
}

func (r *cloudStorageWriterRepo) Name() string {
	return "gcs"
}

func (r *cloudStorageWriterRepo) Store(c bCtx.Ctx, key string, body io.Reader, size int64, contentType string) (string, error) {
	contentPath, err := url.Parse(key)
	if err != nil {
		c.WithFields(log.Fields{
			"key": key,
			"err": err,
		}).Error("failed to parse key")
		return "", err
	}

	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	w := r.client.Bucket(r.bucketName).Object(key).NewWriter(ctx)
	if len(contentType) > 0 {
		w.ObjectAttrs.ContentType = contentType
	}
	if _, err := io.Copy(w, body); err != nil {
		ctx.WithFields(log.Fields{
			"key": key,
			"err": err,
		}).Error("failed to copy")
		// abandons the upload
		cancel()
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		ctx.WithFields(log.Fields{
			"key": key,
			"err": err,
		}).Error("failed to close writer")
		return "", err
	}
	return r.baseUrl.ResolveReference(contentPath).String(), nil
}
