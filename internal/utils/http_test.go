package utils

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type mockHTTPClient struct {
	response *http.Response
	err      error
	calls    int
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.calls++
	if req.Context() != nil {
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		default:
		}
	}
	return m.response, m.err
}

func newResponse(status int, body string, headers map[string]string) *http.Response {
	res := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{},
	}
	for k, v := range headers {
		res.Header.Set(k, v)
	}
	return res
}

func TestHttpGET(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		client    *mockHTTPClient
		maxLength []int64
		want      string
		wantErr   bool
		wantErrIs error
	}{
		{
			name:   "successful download",
			client: &mockHTTPClient{response: newResponse(http.StatusOK, "registry content", nil)},
			want:   "registry content",
		},
		{
			name:      "non-200 status",
			client:    &mockHTTPClient{response: newResponse(http.StatusNotFound, "not found", nil)},
			wantErr:   true,
			wantErrIs: ErrHTTPGetError,
		},
		{
			name:    "connection error",
			client:  &mockHTTPClient{err: errors.New("connection refused")},
			wantErr: true,
		},
		{
			name: "content-length exceeds limit",
			client: &mockHTTPClient{
				response: newResponse(http.StatusOK, "tiny", map[string]string{"Content-Length": "1000"}),
			},
			maxLength: []int64{10},
			wantErr:   true,
			wantErrIs: ErrHTTPGetTooLarge,
		},
		{
			name:      "body exceeds limit without content-length",
			client:    &mockHTTPClient{response: newResponse(http.StatusOK, strings.Repeat("x", 100), nil)},
			maxLength: []int64{10},
			wantErr:   true,
			wantErrIs: ErrHTTPGetTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := HttpGET(ctx, tt.client, "https://example.com/oui.txt", tt.maxLength...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("HttpGET() expected error, got nil")
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Errorf("HttpGET() error = %v, want %v", err, tt.wantErrIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("HttpGET() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("HttpGET() = %q, want %q", data, tt.want)
			}
		})
	}

	t.Run("cancelled context aborts request", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		client := &mockHTTPClient{response: newResponse(http.StatusOK, "data", nil)}
		if _, err := HttpGET(cancelled, client, "https://example.com/oui.txt"); err == nil {
			t.Error("HttpGET() expected error for cancelled context")
		}
	})
}
