package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchAppConfig(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantURL  string
		wantName string
		wantErr  bool
	}{
		{
			name:     "snake case keys",
			body:     `{"api_url": "https://api.example.com/", "customer_name": "Acme"}`,
			wantURL:  "https://api.example.com",
			wantName: "Acme",
		},
		{
			name:     "camel case keys",
			body:     `{"apiUrl": "https://api.example.com", "customerName": "Acme"}`,
			wantURL:  "https://api.example.com",
			wantName: "Acme",
		},
		{
			name:    "missing api url",
			body:    `{"customer_name": "Acme"}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			body:    `not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/config.json" {
					t.Errorf("path = %s, want /config.json", r.URL.Path)
				}
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			cfg, err := FetchAppConfig(srv.URL)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchAppConfig() error = %v", err)
			}
			if cfg.APIURL != tt.wantURL {
				t.Errorf("APIURL = %q, want %q", cfg.APIURL, tt.wantURL)
			}
			if cfg.CustomerName != tt.wantName {
				t.Errorf("CustomerName = %q, want %q", cfg.CustomerName, tt.wantName)
			}
		})
	}
}

func TestFetchAppConfigHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := FetchAppConfig(srv.URL); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestSuggestedQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.URL.Path != "/api/chat-suggested-questions" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]string{"What sells best?", "Compare products"})
	}))
	defer srv.Close()

	client := NewClientWithServer(srv.URL)
	questions, err := client.SuggestedQuestions()
	if err != nil {
		t.Fatalf("SuggestedQuestions() error = %v", err)
	}
	if len(questions) != 2 || questions[0] != "What sells best?" {
		t.Errorf("questions = %v", questions)
	}
}

func TestProductCRUD(t *testing.T) {
	type call struct {
		method, path string
	}
	var calls []call

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		if r.Method != "DELETE" {
			var p Product
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				t.Errorf("decoding body: %v", err)
			}
			if p.DisplayName == "" {
				t.Error("display_name missing from body")
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClientWithServer(srv.URL)
	p := Product{DisplayName: "Solar Charger", Description: "d"}

	if err := client.AddProduct(p); err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}
	if err := client.UpdateProduct("solar-charger", p); err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}
	if err := client.DeleteProduct("solar-charger"); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}

	want := []call{
		{"POST", "/api/products"},
		{"PUT", "/api/products/solar-charger"},
		{"DELETE", "/api/products/solar-charger"},
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestTabCRUD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "GET" && r.URL.Path == "/api/tabs":
			json.NewEncoder(w).Encode([]Tab{{ID: "t1", Label: "Ideas", ItemType: "idea"}})
		case r.Method == "POST" && r.URL.Path == "/api/tabs":
			var tab Tab
			json.NewDecoder(r.Body).Decode(&tab)
			tab.ID = "t2"
			json.NewEncoder(w).Encode(tab)
		case r.Method == "PUT" && r.URL.Path == "/api/tabs/t1":
			w.WriteHeader(http.StatusOK)
		case r.Method == "DELETE" && r.URL.Path == "/api/tabs/t1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClientWithServer(srv.URL)

	tabs, err := client.ListTabs()
	if err != nil {
		t.Fatalf("ListTabs() error = %v", err)
	}
	if len(tabs) != 1 || tabs[0].ID != "t1" {
		t.Errorf("tabs = %v", tabs)
	}

	created, err := client.CreateTab(Tab{Label: "Gadgets", Prompt: "p", ItemType: "idea"})
	if err != nil {
		t.Fatalf("CreateTab() error = %v", err)
	}
	if created.ID != "t2" || created.Label != "Gadgets" {
		t.Errorf("created = %+v", created)
	}

	if err := client.UpdateTab("t1", Tab{Label: "Renamed"}); err != nil {
		t.Fatalf("UpdateTab() error = %v", err)
	}
	if err := client.DeleteTab("t1"); err != nil {
		t.Fatalf("DeleteTab() error = %v", err)
	}
}

func TestDoJSONErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "product not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClientWithServer(srv.URL)
	err := client.DeleteProduct("nope")
	if err == nil {
		t.Fatal("expected error on 404")
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "product not found") {
		t.Errorf("error = %v, want status and body in message", err)
	}
}

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"line<br>break", "line\nbreak"},
		{"line<br/>break", "line\nbreak"},
		{"<p>wrapped</p>", "wrapped"},
		{"<div class=\"x\">styled</div>", "styled"},
	}
	for _, tt := range tests {
		if got := cleanHTML(tt.in); got != tt.want {
			t.Errorf("cleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
