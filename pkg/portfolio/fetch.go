package portfolio

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
)

// DefaultFetchTimeout bounds a remote fetch when the caller supplies no deadline.
const DefaultFetchTimeout = 30 * time.Second

// Fetch retrieves the raw dataset from a file path or an http(s) URL.
func Fetch(ctx context.Context, source string) (data []byte, err error) {
	parsedURL, urlErr := url.Parse(source)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		data, err = fetchFromURL(ctx, source)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch portfolio from URL: %s", source)
			return data, err
		}
		return data, err
	}

	data, err = fetchFromFile(source)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch portfolio from file: %s", source)
		return data, err
	}

	return data, err
}

// fetchFromFile reads the dataset from disk.
func fetchFromFile(path string) (data []byte, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("file is empty")
		return data, err
	}

	return data, err
}

// fetchFromURL downloads the dataset over HTTP.
func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultFetchTimeout)
		defer cancel()
	}

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", "portfolio-prioritizer/1.0")
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	var resp *http.Response
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("fetched content is empty")
		return data, err
	}

	return data, err
}
