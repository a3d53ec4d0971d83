package loader

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pfrederiksen/fixture-viewer/internal/logger"
)

func TestLoad_File(t *testing.T) {
	ds, err := New().Load(context.Background(), "testdata/fixture_output.csv")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ds.Len() != 3 {
		t.Errorf("expected 3 records, got %d", ds.Len())
	}
	if ds.Source != "testdata/fixture_output.csv" {
		t.Errorf("expected source to be recorded, got %q", ds.Source)
	}
}

func TestLoad_FileURL(t *testing.T) {
	abs, err := filepath.Abs("testdata/fixture_output.csv")
	if err != nil {
		t.Fatal(err)
	}

	ds, err := New().Load(context.Background(), "file://"+abs)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("expected 3 records, got %d", ds.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := New().Load(context.Background(), "  ")

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
}

func TestLoad_HTTP(t *testing.T) {
	data, err := os.ReadFile("testdata/fixture_output.csv")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
			t.Errorf("Expected User-Agent test-agent, got %q", ua)
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write(data)
	}))
	defer server.Close()

	ds, err := New().WithUserAgent("test-agent").Load(context.Background(), server.URL+"/fixture_output.csv")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("expected 3 records, got %d", ds.Len())
	}
}

func TestLoad_HTTPContentType(t *testing.T) {
	data, err := os.ReadFile("testdata/fixture_output.json")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer server.Close()

	// no extension in the URL, format comes from the content type
	ds, err := New().Load(context.Background(), server.URL+"/api/fixture")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("expected 3 records, got %d", ds.Len())
	}
}

func TestLoad_HTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := New().Load(context.Background(), server.URL+"/fixture_output.csv")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if !strings.Contains(err.Error(), "unexpected status code: 404") {
		t.Errorf("error = %v, want status code in message", err)
	}
}

func TestLoad_HTTPNonAuthoritative(t *testing.T) {
	data, err := os.ReadFile("testdata/fixture_output.csv")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		w.Write(data)
	}))
	defer server.Close()

	ds, err := New().Load(context.Background(), server.URL+"/fixture_output.csv")
	if err != nil {
		t.Fatalf("Load failed for 203 response: %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("expected 3 records, got %d", ds.Len())
	}
}

func TestLoad_HTTPTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := New().WithTimeout(20*time.Millisecond).Load(context.Background(), server.URL+"/fixture_output.csv")

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scenarioCSV))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Load(ctx, server.URL+"/fixture_output.csv")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoad_JSON(t *testing.T) {
	ds, err := New().Load(context.Background(), "testdata/fixture_output.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ds.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", ds.Len())
	}

	want := []string{"competencia", "fecha", "local", "visitante", "estadio"}
	if strings.Join(ds.Header, ",") != strings.Join(want, ",") {
		t.Errorf("Header = %v, want %v", ds.Header, want)
	}

	r := ds.Records[0]
	if r.Round() != "1" {
		t.Errorf("expected numeric fecha rendered as \"1\", got %q", r.Round())
	}
	if r.Stadium() != "Estadio Municipal" {
		t.Errorf("expected stadium, got %q", r.Stadium())
	}
	if got := ds.Competitions(); len(got) != 2 || got[0] != "FEMENINO" {
		t.Errorf("unexpected competitions: %v", got)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Parse("bad.json", FormatJSON, []byte(`{"competencia": "Liga"}`))

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
}

func TestLoad_HTML(t *testing.T) {
	ds, err := New().Load(context.Background(), "testdata/fixture.html")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ds.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", ds.Len())
	}
	if ds.Records[1].Competition() != "Liga" {
		t.Errorf("expected trimmed competition, got %q", ds.Records[1].Competition())
	}
	if ds.Records[2].Home() != "San Lorenzo" {
		t.Errorf("expected San Lorenzo, got %q", ds.Records[2].Home())
	}
}

func TestLoad_HTMLWithoutTable(t *testing.T) {
	_, err := Parse("page.html", FormatHTML, []byte("<html><body><p>Sin fixture</p></body></html>"))
	if err == nil || !strings.Contains(err.Error(), "no table found") {
		t.Errorf("expected no table error, got %v", err)
	}
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("SetSheetRow() error = %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	return path
}

func TestLoad_XLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"competencia", "fecha", "local", "visitante"},
		{"Liga", 1, "Boca", "River"},
		{"Liga", 2, "Boca", "Racing"},
		{"", "", "", ""},
		{"Copa", 1, "San Lorenzo", "Independiente"},
	})

	ds, err := New().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ds.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", ds.Len())
	}
	if ds.Records[1].Round() != "2" || ds.Records[1].Away() != "Racing" {
		t.Errorf("unexpected record: %v", ds.Records[1])
	}
}

func TestLoad_XLSXTrailingEmptyCell(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"competencia", "fecha", "local", "visitante", "estadio"},
		{"Liga", 1, "Boca", "River", "La Bombonera"},
		{"Copa", 1, "San Lorenzo", "Independiente", ""},
	})

	var logs bytes.Buffer
	previous := logger.Default()
	logger.SetDefault(logger.New(logger.LevelWarn, &logs))
	defer logger.SetDefault(previous)

	ds, err := New().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ds.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", ds.Len())
	}
	if got := ds.Records[1].Stadium(); got != "" {
		t.Errorf("Stadium() = %q, want empty", got)
	}
	if strings.Contains(logs.String(), "column count") {
		t.Errorf("unexpected column count warning: %s", logs.String())
	}
}

func TestLoad_InvalidXLSX(t *testing.T) {
	_, err := Parse("broken.xlsx", FormatXLSX, []byte("not a workbook"))

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		source      string
		contentType string
		expected    Format
	}{
		{"fixture_output.csv", "", FormatCSV},
		{"fixture_output.json", "", FormatJSON},
		{"/data/Fixture.XLSX", "", FormatXLSX},
		{"fixture.htm", "", FormatHTML},
		{"https://example.com/fixture_output.json?v=2", "text/plain", FormatJSON},
		{"https://example.com/fixture", "text/html; charset=utf-8", FormatHTML},
		{"https://example.com/fixture", "application/json", FormatJSON},
		{"https://example.com/fixture", "", FormatCSV},
		{"fixture", "", FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := DetectFormat(tt.source, tt.contentType); got != tt.expected {
				t.Errorf("DetectFormat(%q, %q) = %q, expected %q", tt.source, tt.contentType, got, tt.expected)
			}
		})
	}
}
