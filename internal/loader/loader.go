package loader

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/pfrederiksen/fixture-viewer/internal/logger"
	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

const (
	UserAgent = "fixture-viewer/1.0 (github.com/pfrederiksen/fixture-viewer)"
	Timeout   = 30 * time.Second
)

// Format identifies how a fixture resource is encoded
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
)

// Loader fetches and parses fixture resources
type Loader struct {
	client    *http.Client
	userAgent string
}

// New creates a Loader with the default timeout and user agent
func New() *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: Timeout,
		},
		userAgent: UserAgent,
	}
}

// WithTimeout sets the HTTP client timeout
func (l *Loader) WithTimeout(d time.Duration) *Loader {
	l.client.Timeout = d
	return l
}

// WithUserAgent sets the User-Agent header sent with HTTP requests
func (l *Loader) WithUserAgent(ua string) *Loader {
	if ua != "" {
		l.userAgent = ua
	}
	return l
}

// Load retrieves source and parses it into a dataset.
func (l *Loader) Load(ctx context.Context, source string) (*match.Dataset, error) {
	start := time.Now()
	logger.IncrCounter("fixture.load")

	ds, err := l.load(ctx, source)
	logger.RecordTiming("fixture.load", time.Since(start))
	if err != nil {
		logger.IncrCounter("fixture.load_error")
		logger.Error("Fixture load failed", logger.Fields{"source": source}, err)
		return nil, err
	}

	logger.SetGauge("fixture.records", float64(ds.Len()))
	logger.Info("Fixture loaded", logger.Fields{
		"source":       source,
		"records":      ds.Len(),
		"competitions": len(ds.Competitions()),
		"rounds":       len(ds.Rounds()),
		"duration_ms":  time.Since(start).Milliseconds(),
	})

	return ds, nil
}

func (l *Loader) load(ctx context.Context, source string) (*match.Dataset, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, loadErr(source, "no source given")
	}

	var (
		data        []byte
		contentType string
		err         error
	)
	if isHTTP(source) {
		data, contentType, err = l.fetch(ctx, source)
	} else {
		data, err = readFile(source)
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	return Parse(source, DetectFormat(source, contentType), data)
}

// fetch retrieves an http(s) resource
func (l *Loader) fetch(ctx context.Context, source string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)

	logger.Debug("Fetching fixture", logger.Fields{"url": source})

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching resource: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func readFile(source string) ([]byte, error) {
	p := strings.TrimPrefix(source, "file://")
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

func isHTTP(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// DetectFormat picks a Format from the source extension, falling back to the
// response content type and finally to CSV.
func DetectFormat(source, contentType string) Format {
	p := source
	if isHTTP(source) {
		if u, err := url.Parse(source); err == nil {
			p = u.Path
		}
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".xlsx":
		return FormatXLSX
	case ".html", ".htm":
		return FormatHTML
	case ".csv", ".txt":
		return FormatCSV
	}

	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			switch mediaType {
			case "application/json":
				return FormatJSON
			case "text/html":
				return FormatHTML
			case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
				return FormatXLSX
			}
		}
	}

	return FormatCSV
}

// Parse decodes data in the given format into a dataset.
func Parse(source string, format Format, data []byte) (*match.Dataset, error) {
	logger.Debug("Parsing fixture", logger.Fields{"source": source, "format": string(format), "bytes": len(data)})

	switch format {
	case FormatCSV:
		return ParseCSV(source, string(data))
	case FormatJSON:
		return parseJSON(source, data)
	case FormatXLSX:
		return parseXLSX(source, data)
	case FormatHTML:
		return parseHTML(source, data)
	default:
		return nil, loadErr(source, "unknown format: %s", format)
	}
}
