// Package netx contains plain HTTP helpers that sit outside the JSON API,
// such as fetching an object through an S3 presigned URL.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DownloadPresignedURL fetches url with GET and streams the body into w.
// It returns the number of bytes written. A nil client means
// http.DefaultClient.
func DownloadPresignedURL(ctx context.Context, client *http.Client, url string, w io.Writer) (int64, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	return io.Copy(w, resp.Body)
}
