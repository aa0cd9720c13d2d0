package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"datalab/internal/config"
	"datalab/internal/logbook"
	"datalab/internal/remote"
)

func newTestDeps(serverURL string) *Deps {
	cfg := &config.Config{
		APIBaseURL:       serverURL,
		DiscoveryTimeout: time.Second,
		RequestTimeout:   5 * time.Second,
		Headless:         true,
	}
	return &Deps{
		Config: cfg,
		Client: remote.New(config.NewStatic(serverURL), cfg.RequestTimeout),
		Book:   logbook.New(),
	}
}

func runCommand(t *testing.T, deps *Deps, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := New(deps)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScrapeCommand_SingleSymbol(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scrapper/scrape" {
			t.Errorf("path = %q, want /scrapper/scrape", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"symbol": "FPT",
			"reports_count": 2,
			"created_count": 2,
			"updated_count": 0
		}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	out, err := runCommand(t, newTestDeps(server.URL), "scrape", "fpt")
	if err != nil {
		t.Fatalf("scrape command returned unexpected error: %v\noutput:\n%s", err, out)
	}

	for _, fragment := range []string{"[SUCCESS]", "FPT", "2 reports", "1 succeeded"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output does not contain %q:\n%s", fragment, out)
		}
	}
}

func TestScrapeCommand_UnsupportedSource(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	_, err := runCommand(t, newTestDeps(server.URL), "scrape", "FPT", "--source", "vietstock")
	if err == nil {
		t.Fatal("scrape command expected error for unsupported source, got nil")
	}
	if !strings.Contains(err.Error(), "vietstock") {
		t.Errorf("error = %q, want it to name the unsupported source", err.Error())
	}
	if calls != 0 {
		t.Errorf("backend received %d calls, want 0", calls)
	}
}

func TestScrapeCommand_UnknownSource(t *testing.T) {
	_, err := runCommand(t, newTestDeps("http://localhost:1"), "scrape", "FPT", "--source", "bloomberg")
	if err == nil {
		t.Fatal("scrape command expected error for unknown source, got nil")
	}
}

func TestReportsListCommand(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "FPT" {
			t.Errorf("symbol = %q, want FPT", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{
			"id": 1, "symbol": "FPT", "company_name": "FPT CORP",
			"report_name": "Annual Report", "report_type": "annual",
			"report_year": 2023, "is_audited": true, "is_reviewed": false,
			"report_url": "https://example.com/r.pdf"
		}]`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	out, err := runCommand(t, newTestDeps(server.URL), "reports", "list", "--symbol", "FPT")
	if err != nil {
		t.Fatalf("reports list returned unexpected error: %v", err)
	}

	for _, fragment := range []string{"FPT", "FY 2023", "showing reports 1-1"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output does not contain %q:\n%s", fragment, out)
		}
	}
}

func TestReportsGetCommand_InvalidID(t *testing.T) {
	_, err := runCommand(t, newTestDeps("http://localhost:1"), "reports", "get", "abc")
	if err == nil {
		t.Fatal("reports get expected error for non-numeric ID, got nil")
	}
}

func TestReportsDeleteCommand(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q, want DELETE", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "Report 3 deleted successfully"}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	out, err := runCommand(t, newTestDeps(server.URL), "reports", "delete", "3")
	if err != nil {
		t.Fatalf("reports delete returned unexpected error: %v", err)
	}
	if !strings.Contains(out, "deleted successfully") {
		t.Errorf("output does not contain the server message:\n%s", out)
	}
}

func TestStatsCommand(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"total_reports": 17, "database": "operational"}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	out, err := runCommand(t, newTestDeps(server.URL), "stats")
	if err != nil {
		t.Fatalf("stats returned unexpected error: %v", err)
	}
	if !strings.Contains(out, "total reports: 17") {
		t.Errorf("output does not contain the report count:\n%s", out)
	}
}

func TestStatementsCommand(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/financial/reports/5/balance-sheet" {
			t.Errorf("path = %q, want /financial/reports/5/balance-sheet", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{
			"id": 1, "report_id": 5, "item_name": "Total assets",
			"item_code": "270", "item_value": 1000000, "sign": 1,
			"level": 1, "item_display": 1, "parent_item_id": null
		}]`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	out, err := runCommand(t, newTestDeps(server.URL), "statements", "balance", "5")
	if err != nil {
		t.Fatalf("statements balance returned unexpected error: %v", err)
	}
	for _, fragment := range []string{"Total assets", "1,000,000"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output does not contain %q:\n%s", fragment, out)
		}
	}
}

func TestHealthCommand(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q, want /health", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "app": "Data Lab", "version": "1.0.0"}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	out, err := runCommand(t, newTestDeps(server.URL), "health")
	if err != nil {
		t.Fatalf("health returned unexpected error: %v", err)
	}
	if !strings.Contains(out, "healthy") {
		t.Errorf("output does not contain the health status:\n%s", out)
	}
}
