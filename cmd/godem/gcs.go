package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func gsparse(file string) (bucket, object string) {
	if !strings.HasPrefix(file, "gs://") {
		return
	}
	file = file[5:]
	firstSlash := strings.Index(file, "/")
	if firstSlash == -1 {
		return
	}
	obj := strings.Trim(file[firstSlash:], "/")
	if obj == "" {
		return
	}
	bucket = file[0:firstSlash]
	object = obj
	return
}

func newStorageClient(ctx context.Context) (*storage.Client, error) {
	if gsAnonymous {
		return storage.NewClient(ctx, option.WithoutAuthentication())
	}
	return storage.NewClient(ctx)
}

// stager moves gs:// objects to and from local temp files, since gdaldem
// only reads and writes local paths.
type stager struct {
	cl     *storage.Client
	tmpdir string
}

// stageIn downloads gs://bucket/object to a temp file and returns its path.
func (s *stager) stageIn(ctx context.Context, bucket, object string) (string, error) {
	r, err := s.cl.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("open gs://%s/%s: %w", bucket, object, err)
	}
	defer r.Close()
	tmpf, err := os.CreateTemp(s.tmpdir, "*"+path.Ext(object))
	if err != nil {
		return "", err
	}
	defer tmpf.Close()
	if _, err := io.Copy(tmpf, r); err != nil {
		os.Remove(tmpf.Name())
		return "", fmt.Errorf("download gs://%s/%s: %w", bucket, object, err)
	}
	return tmpf.Name(), nil
}

// stageOut uploads the local file to gs://bucket/object.
func (s *stager) stageOut(ctx context.Context, local, bucket, object string) error {
	f, err := os.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()
	w := s.cl.Bucket(bucket).Object(object).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return fmt.Errorf("upload gs://%s/%s: %w", bucket, object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("upload gs://%s/%s: %w", bucket, object, err)
	}
	return nil
}
