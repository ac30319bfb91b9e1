package s3

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Driver stores blobs in an S3-compatible bucket.
type Driver struct {
	bucket string
	sess   *session.Session
	svc    *s3.S3
}

// NewDriver builds a driver from the loaded storage configuration.
func NewDriver() (*Driver, error) {
	cfg := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(conf.StorageConfig.AccessKey, conf.StorageConfig.SecretKey, ""),
		Region:           aws.String(conf.StorageConfig.Region),
		S3ForcePathStyle: aws.Bool(conf.StorageConfig.ForcePathStyle),
	}
	if conf.StorageConfig.Endpoint != "" {
		cfg.Endpoint = aws.String(conf.StorageConfig.Endpoint)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	return &Driver{
		bucket: conf.StorageConfig.Bucket,
		sess:   sess,
		svc:    s3.New(sess),
	}, nil
}

// Put streams a blob to the given key.
func (handler *Driver) Put(ctx context.Context, file io.Reader, key string, size uint64) error {
	uploader := s3manager.NewUploader(handler.sess)

	_, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: &handler.bucket,
		Key:    &key,
		Body:   io.LimitReader(file, int64(size)),
	})
	return err
}

// Copy duplicates the blob at src under dst server-side.
func (handler *Driver) Copy(ctx context.Context, src string, dst string) error {
	_, err := handler.svc.CopyObjectWithContext(ctx, &s3.CopyObjectInput{
		Bucket:     &handler.bucket,
		CopySource: aws.String(url.PathEscape(handler.bucket + "/" + src)),
		Key:        &dst,
	})
	return err
}

// Delete removes the given blobs in one batch request and returns the
// keys that were not removed.
func (handler *Driver) Delete(ctx context.Context, keys []string) ([]string, error) {
	objects := make([]*s3.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		blobKey := key
		objects = append(objects, &s3.ObjectIdentifier{Key: &blobKey})
	}

	res, err := handler.svc.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
		Bucket: &handler.bucket,
		Delete: &s3.Delete{
			Objects: objects,
		},
	})
	if err != nil {
		return keys, err
	}

	deleted := make([]string, 0, len(res.Deleted))
	for _, deleteRes := range res.Deleted {
		deleted = append(deleted, *deleteRes.Key)
	}

	failed := util.SliceDifference(keys, deleted)
	return failed, nil
}

// Source returns a presigned GET URL for the blob at key.
func (handler *Driver) Source(ctx context.Context, key string, fileName string, ttl int64) (string, error) {
	contentDescription := aws.String("attachment; filename=\"" + url.PathEscape(fileName) + "\"")

	req, _ := handler.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket:                     &handler.bucket,
		Key:                        &key,
		ResponseContentDisposition: contentDescription,
	})

	return req.Presign(time.Duration(ttl) * time.Second)
}
