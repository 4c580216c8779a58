// Copyright (c) 2026 Akbar Maulana
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage uploads processed media to S3-compatible object storage
// and hands back public URLs for embedding in content.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures the object storage client.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Uploader stores media objects in a single public-read bucket.
type Uploader struct {
	client   *minio.Client
	endpoint string
	bucket   string
	useSSL   bool
}

// New creates an Uploader, ensures the bucket exists and marks it
// public-read so uploaded media can be served directly.
func New(ctx context.Context, opts Options) (*Uploader, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket: %w", err)
		}
		slog.Info("created storage bucket", "bucket", opts.Bucket)
	}

	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{"arn:aws:s3:::" + opts.Bucket + "/*"},
			},
		},
	}
	policyJSON, _ := json.Marshal(policy)
	if err := client.SetBucketPolicy(ctx, opts.Bucket, string(policyJSON)); err != nil {
		slog.Warn("failed to set bucket policy", "bucket", opts.Bucket, "error", err)
	}

	return &Uploader{
		client:   client,
		endpoint: opts.Endpoint,
		bucket:   opts.Bucket,
		useSSL:   opts.UseSSL,
	}, nil
}

// Upload stores an object under a fresh date-partitioned key and returns
// its storage path.
func (u *Uploader) Upload(ctx context.Context, reader io.Reader, size int64, contentType, ext string) (string, error) {
	objectPath := objectKey(time.Now(), ext)

	_, err := u.client.PutObject(ctx, u.bucket, objectPath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading object: %w", err)
	}

	return objectPath, nil
}

// Delete removes an object from the bucket.
func (u *Uploader) Delete(ctx context.Context, objectPath string) error {
	return u.client.RemoveObject(ctx, u.bucket, objectPath, minio.RemoveObjectOptions{})
}

// PublicURL returns the browser-reachable URL for a stored object.
func (u *Uploader) PublicURL(objectPath string) string {
	scheme := "http"
	if u.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.endpoint, u.bucket, url.PathEscape(objectPath))
}

// objectKey builds a date-partitioned object key with a random name, so
// uploads never collide and listings stay manageable.
func objectKey(now time.Time, ext string) string {
	return fmt.Sprintf("uploads/%s/%s%s", now.Format("2006/01"), uuid.NewString(), ext)
}
