package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"showcase-cli/internal/config"
)

// Client talks to the showcase backend. One client per resolved
// backend URL; streaming methods live in stream.go.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return NewClientWithServer(cfg.APIURL)
}

func NewClientWithServer(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
}

// ─── App config discovery ───────────────────────────────────────────────────

// AppConfig is the static configuration document the web frontend
// fetches once at startup: where the backend lives and whose showcase
// this is.
type AppConfig struct {
	APIURL       string `json:"api_url"`
	CustomerName string `json:"customer_name"`
}

// FetchAppConfig resolves the backend base URL and customer display
// name from a frontend URL by fetching its config.json. Accepts both
// snake_case and camelCase key styles.
func FetchAppConfig(frontendURL string) (*AppConfig, error) {
	cfgURL := strings.TrimRight(frontendURL, "/") + "/config.json"

	httpClient := &http.Client{Timeout: 15 * time.Second}
	resp, err := httpClient.Get(cfgURL)
	if err != nil {
		return nil, fmt.Errorf("fetching app config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching app config: server returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading app config: %w", err)
	}

	var raw struct {
		APIURL        string `json:"api_url"`
		APIURLCamel   string `json:"apiUrl"`
		Customer      string `json:"customer_name"`
		CustomerCamel string `json:"customerName"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing app config: %w", err)
	}

	out := &AppConfig{APIURL: raw.APIURL, CustomerName: raw.Customer}
	if out.APIURL == "" {
		out.APIURL = raw.APIURLCamel
	}
	if out.CustomerName == "" {
		out.CustomerName = raw.CustomerCamel
	}
	if out.APIURL == "" {
		return nil, fmt.Errorf("app config at %s has no api url", cfgURL)
	}
	out.APIURL = strings.TrimRight(out.APIURL, "/")
	return out, nil
}

// ─── Suggested questions ────────────────────────────────────────────────────

// SuggestedQuestions fetches the pre-generated chat starter questions.
func (c *Client) SuggestedQuestions() ([]string, error) {
	var questions []string
	if err := c.doJSON("GET", "/api/chat-suggested-questions", nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ─── Product CRUD ───────────────────────────────────────────────────────────

// Product is one catalog entry as stored by the backend.
type Product struct {
	Name         string `json:"name,omitempty"`
	DisplayName  string `json:"display_name"`
	Description  string `json:"description"`
	ExternalLink string `json:"external_link,omitempty"`
	InternalLink string `json:"internal_link,omitempty"`
	Icon         string `json:"icon,omitempty"`
}

func (c *Client) AddProduct(p Product) error {
	return c.doJSON("POST", "/api/products", p, nil)
}

func (c *Client) UpdateProduct(name string, p Product) error {
	return c.doJSON("PUT", "/api/products/"+url.PathEscape(name), p, nil)
}

func (c *Client) DeleteProduct(name string) error {
	return c.doJSON("DELETE", "/api/products/"+url.PathEscape(name), nil, nil)
}

// ─── Ideator tab CRUD ───────────────────────────────────────────────────────

// Tab is one ideator tab configuration. IDs are server-assigned.
type Tab struct {
	ID             string `json:"id,omitempty"`
	Label          string `json:"label"`
	Prompt         string `json:"prompt"`
	ItemType       string `json:"item_type"`
	GenerateImages bool   `json:"generate_images,omitempty"`
}

func (c *Client) ListTabs() ([]Tab, error) {
	var tabs []Tab
	if err := c.doJSON("GET", "/api/tabs", nil, &tabs); err != nil {
		return nil, err
	}
	return tabs, nil
}

func (c *Client) CreateTab(t Tab) (*Tab, error) {
	var created Tab
	if err := c.doJSON("POST", "/api/tabs", t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTab(id string, t Tab) error {
	return c.doJSON("PUT", "/api/tabs/"+url.PathEscape(id), t, nil)
}

func (c *Client) DeleteTab(id string) error {
	return c.doJSON("DELETE", "/api/tabs/"+url.PathEscape(id), nil, nil)
}

// ─── Generic JSON helper ────────────────────────────────────────────────────

func (c *Client) doJSON(method, path string, reqBody interface{}, result interface{}) error {
	var bodyReader io.Reader
	hasBody := reqBody != nil && method != "GET"
	if hasBody {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req, hasBody)

	log.Debugf("api: %s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}
	return nil
}
