package tabular

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

//go:embed data/phones.csv
var embeddedCSV string

type Source interface {
	Read(ctx context.Context) (string, error)
}

// NewSource picks an HTTP source for http(s) URLs and a file source for
// file:// URLs and plain paths.
func NewSource(location string, client *http.Client) Source {
	u, err := url.Parse(location)
	if err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return NewHTTPSource(client, location)
		case "file":
			return NewFileSource(u.Path)
		}
	}
	return NewFileSource(location)
}

type httpSource struct {
	client *http.Client
	url    string
}

func NewHTTPSource(client *http.Client, rawURL string) *httpSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{client: client, url: rawURL}
}

func (s *httpSource) Read(ctx context.Context) (string, error) {
	const op = "tabular.httpSource.Read"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s: HTTP %d", op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read body: %w", op, err)
	}
	return string(body), nil
}

type fileSource struct {
	path string
}

func NewFileSource(path string) *fileSource {
	return &fileSource{path: path}
}

func (s *fileSource) Read(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("tabular.fileSource.Read: %w", err)
	}
	return string(b), nil
}

// EmbeddedSource serves text compiled into the binary.
type EmbeddedSource string

// Embedded returns the dataset shipped with the binary.
func Embedded() EmbeddedSource { return EmbeddedSource(embeddedCSV) }

func (s EmbeddedSource) Read(context.Context) (string, error) {
	return string(s), nil
}
