package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

var (
	ErrHTTPGetTooLarge = fmt.Errorf("downloaded content exceeds maximum allowed size")
	ErrHTTPGetError    = fmt.Errorf("error during HTTP GET request")
)

// HTTPClient is the minimal HTTP client surface needed to download
// documents, satisfied by [*http.Client] and by test doubles.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HttpGET downloads the document at url with a single GET request.
//
// The response size is bounded by optionalMaxLength (default
// [DefaultMaxFileSize]): the Content-Length header is checked when present,
// and the body read is limited regardless in case the reported size is
// inaccurate.
func HttpGET(ctx context.Context, client HTTPClient, url string, optionalMaxLength ...int64) ([]byte, error) {
	maxLength := OptionalArg(optionalMaxLength, DefaultMaxFileSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		err := fmt.Errorf("failed to download from %s: HTTP %d", url, res.StatusCode)
		return nil, fmt.Errorf("%w: %v", ErrHTTPGetError, err)
	}

	if header := res.Header.Get("Content-Length"); header != "" {
		length, err := strconv.ParseInt(header, 10, 64)
		if err != nil {
			return nil, err
		}
		if length > maxLength {
			err := fmt.Errorf("download failed for %s, length %d is larger than expected %d", url, length, maxLength)
			return nil, fmt.Errorf("%w: %v", ErrHTTPGetTooLarge, err)
		}
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxLength+1))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > maxLength {
		err := fmt.Errorf("download failed for %s, length %d is larger than expected %d", url, len(data), maxLength)
		return nil, fmt.Errorf("%w: %v", ErrHTTPGetTooLarge, err)
	}
	return data, nil
}
