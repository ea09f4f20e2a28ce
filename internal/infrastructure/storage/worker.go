// Package storage adapts the external object-storage worker. The worker
// accepts POST /{kind}/{id} with raw file bytes and replies with the storage
// key as a plaintext body; files become publicly readable under the bucket URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pawtracks/training-system/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// WorkerClient implements ports.FileStore against the storage worker.
type WorkerClient struct {
	workerURL string
	bucketURL string
	client    *http.Client
}

// Config captures the worker and public bucket endpoints.
type Config struct {
	WorkerURL string
	BucketURL string
	Timeout   time.Duration
}

func NewWorkerClient(cfg Config) *WorkerClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WorkerClient{
		workerURL: strings.TrimRight(cfg.WorkerURL, "/"),
		bucketURL: strings.TrimRight(cfg.BucketURL, "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

// Put streams the file to the worker and returns the storage key. Any non-200
// reply maps to domain.ErrStorageWorker so no database write happens upstream.
func (w *WorkerClient) Put(ctx context.Context, kind, id string, body io.Reader) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", w.workerURL, kind, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload to storage worker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrStorageWorker, resp.StatusCode)
	}

	key, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read storage key: %w", err)
	}
	return string(key), nil
}

// PublicURL builds the public bucket URL for a storage key.
func (w *WorkerClient) PublicURL(key string) string {
	return w.bucketURL + "/" + strings.TrimLeft(key, "/")
}
