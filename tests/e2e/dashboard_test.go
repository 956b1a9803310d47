package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

const baseURL = "http://localhost:3001"

type SentimentCounts struct {
	Positive int `json:"positivo"`
	Neutral  int `json:"neutro"`
	Negative int `json:"negativo"`
}

type Trend struct {
	Change struct {
		Positive int `json:"positivo"`
		Neutral  int `json:"neutro"`
		Negative int `json:"negativo"`
	} `json:"trendChange"`
	Total    []int `json:"totalTrendData"`
	Positive []int `json:"positiveTrendData"`
	Neutral  []int `json:"neutralTrendData"`
	Negative []int `json:"negativeTrendData"`
}

type Bucket struct {
	Counts SentimentCounts   `json:"sentimentos"`
	Recent []json.RawMessage `json:"recentes"`
	Trend  Trend             `json:"trends"`
}

type Dashboard struct {
	Status string `json:"status"`
	Feed   Bucket `json:"feed"`
	Reels  Bucket `json:"reels"`
	Story  Bucket `json:"story"`
	Totals struct {
		Total    int `json:"total"`
		Positive int `json:"positivo"`
		Neutral  int `json:"neutro"`
		Negative int `json:"negativo"`
	} `json:"totais"`
	Percentages    SentimentCounts   `json:"percentuais"`
	Satisfaction   int               `json:"satisfacao"`
	RecentComments []json.RawMessage `json:"recentComments"`
	TopEngagers    []struct {
		Username     string `json:"username"`
		Interactions int    `json:"interacoes"`
	} `json:"top5Engagers"`
}

type LookupResult struct {
	Found   bool            `json:"found"`
	Profile json.RawMessage `json:"profile"`
}

type ConsoleMetrics struct {
	Status    string `json:"status"`
	Hostinger struct {
		CPU    int `json:"cpu"`
		Memory int `json:"memory"`
		Disk   int `json:"disk"`
	} `json:"hostinger"`
	N8N struct {
		ProdExecutions int     `json:"prodExecutions"`
		FailureRate    float64 `json:"failureRate"`
	} `json:"n8n"`
}

// TestDashboard tests GET /api/dashboard
func TestDashboard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	resp, err := http.Get(baseURL + "/api/dashboard")
	if err != nil {
		t.Fatalf("Failed to get dashboard: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, string(respBody))
	}

	var d Dashboard
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if d.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", d.Status)
	}

	for name, b := range map[string]Bucket{"feed": d.Feed, "reels": d.Reels, "story": d.Story} {
		if b.Recent == nil {
			t.Errorf("Expected %s.recentes to be an array, got null", name)
		}
		if len(b.Recent) > 6 {
			t.Errorf("Expected at most 6 recent items in %s, got %d", name, len(b.Recent))
		}
		if len(b.Trend.Total) != 7 {
			t.Errorf("Expected 7-day trend series in %s, got %d points", name, len(b.Trend.Total))
		}
	}

	sum := d.Totals.Positive + d.Totals.Neutral + d.Totals.Negative
	if d.Totals.Total != sum {
		t.Errorf("Expected total %d to equal sentiment sum %d", d.Totals.Total, sum)
	}

	if d.Satisfaction != d.Percentages.Positive {
		t.Errorf("Expected satisfacao %d to equal positive percentage %d", d.Satisfaction, d.Percentages.Positive)
	}

	if len(d.RecentComments) > 20 {
		t.Errorf("Expected at most 20 recent comments, got %d", len(d.RecentComments))
	}

	if len(d.TopEngagers) > 5 {
		t.Errorf("Expected at most 5 top engagers, got %d", len(d.TopEngagers))
	}
	for _, e := range d.TopEngagers {
		if e.Username == "" || e.Username[0] != '@' {
			t.Errorf("Expected engager username to be @-prefixed, got '%s'", e.Username)
		}
	}

	t.Logf("Dashboard: total=%d, satisfacao=%d%%", d.Totals.Total, d.Satisfaction)
}

// TestMonitorUser tests GET /api/monitor/user
func TestMonitorUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	t.Run("missing query fails", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/api/monitor/user")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown user is found=false", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/api/monitor/user?q=%40e2e_no_such_user")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, string(respBody))
		}

		var result LookupResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if result.Found {
			t.Error("Expected found=false for unknown user")
		}
	})
}

// TestConsole tests GET /api/console
func TestConsole(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	resp, err := http.Get(baseURL + "/api/console")
	if err != nil {
		t.Fatalf("Failed to get console metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, string(respBody))
	}

	var m ConsoleMetrics
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if m.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", m.Status)
	}
	if m.Hostinger.CPU < 0 || m.Hostinger.CPU > 100 {
		t.Errorf("Expected CPU in [0,100], got %d", m.Hostinger.CPU)
	}
	if m.N8N.ProdExecutions <= 0 {
		t.Errorf("Expected positive prodExecutions, got %d", m.N8N.ProdExecutions)
	}

	t.Logf("Console: cpu=%d%%, executions=%d", m.Hostinger.CPU, m.N8N.ProdExecutions)
}

// TestHealth tests the health probes
func TestHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(baseURL + path)
		if err != nil {
			t.Fatalf("Failed to get %s: %v", path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200 for %s, got %d", path, resp.StatusCode)
		}
	}
}
