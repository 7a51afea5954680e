package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"showcase-cli/internal/service"
	"showcase-cli/internal/sse"
)

// ─── Streaming endpoints ────────────────────────────────────────────────────
//
// Every streaming method opens one request, wraps the body in an
// sse.Decoder with the separator that endpoint uses, classifies each
// envelope, and invokes the callback per event in frame order. The
// callback runs on the caller's goroutine; the body is closed when the
// method returns, whether by stop frame, body end, or error.

// ChatRequest is the POST /api/chat payload.
type ChatRequest struct {
	Question       string   `json:"question"`
	ChatHistory    []string `json:"chat_history,omitempty"`
	PromptModifier string   `json:"prompt_modifier,omitempty"`
}

// ChatStream streams one chat answer. A protocol `error` frame is
// returned as *service.ProtocolError, distinct from transport errors.
func (c *Client) ChatStream(req ChatRequest, cb func(service.ChatEvent)) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	return c.stream("POST", "/api/chat", body, sse.Options{}, func(env sse.Envelope) (bool, error) {
		ev, ok, perr := service.ParseChatEvent(env)
		if perr != nil {
			return false, perr
		}
		if !ok {
			return false, nil
		}
		cb(ev)
		return ev.Kind == service.ChatStop, nil
	})
}

// ProductStream streams the product catalog, one item per frame.
func (c *Client) ProductStream(limit int, cb func(service.ItemEvent)) error {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	return c.itemStream("/api/products?"+params.Encode(), cb)
}

// SiteItemStream streams generated site items for a tab prompt.
func (c *Client) SiteItemStream(prompt, itemType string, limit int, generateImages bool, cb func(service.ItemEvent)) error {
	params := url.Values{}
	params.Set("prompt", prompt)
	params.Set("item_type", itemType)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("generate_images", strconv.FormatBool(generateImages))
	return c.itemStream("/api/site-items?"+params.Encode(), cb)
}

// IdeaStream streams generated product ideas for a prompt.
func (c *Client) IdeaStream(prompt string, limit int, cb func(service.ItemEvent)) error {
	params := url.Values{}
	params.Set("prompt", prompt)
	params.Set("limit", strconv.Itoa(limit))
	return c.itemStream("/api/ideas?"+params.Encode(), cb)
}

// itemStream handles the shared item-list protocol: line-separated
// frames, each frame one item, terminated by a stop sentinel.
func (c *Client) itemStream(path string, cb func(service.ItemEvent)) error {
	opts := sse.Options{RecordSeparator: sse.LineSeparator}
	return c.stream("GET", path, nil, opts, func(env sse.Envelope) (bool, error) {
		ev, ok, perr := service.ParseItemEvent(env)
		if perr != nil {
			return false, perr
		}
		if !ok {
			return false, nil
		}
		cb(ev)
		return ev.Kind == service.ItemStop, nil
	})
}

// IdeaDetailStream streams the generated detail for one idea:
// press release, social media posts, and customer reviews.
func (c *Client) IdeaDetailStream(title string, cb func(service.IdeaEvent)) error {
	params := url.Values{}
	params.Set("title", title)
	return c.stream("GET", "/api/idea-details?"+params.Encode(), nil, sse.Options{}, func(env sse.Envelope) (bool, error) {
		ev, ok, perr := service.ParseIdeaEvent(env)
		if perr != nil {
			return false, perr
		}
		if !ok {
			return false, nil
		}
		cb(ev)
		return ev.Kind == service.IdeaStop, nil
	})
}

// ProductDetailStream streams the generated detail page for a product.
func (c *Client) ProductDetailStream(name string, cb func(service.ProductEvent)) error {
	return c.stream("GET", "/api/product-details/"+url.PathEscape(name), nil, sse.Options{}, func(env sse.Envelope) (bool, error) {
		ev, ok, perr := service.ParseProductEvent(env)
		if perr != nil {
			return false, perr
		}
		if !ok {
			return false, nil
		}
		cb(ev)
		return ev.Kind == service.ProductStop, nil
	})
}

// stream opens the request and pumps envelopes to handle until it
// reports done, the body ends, or an error occurs.
func (c *Client) stream(method, path string, body []byte, opts sse.Options, handle func(sse.Envelope) (bool, error)) error {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req, body != nil)
	req.Header.Set("Accept", "text/event-stream")

	log.Debugf("api: %s %s (streaming)", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(errBody))
	}

	dec := sse.NewDecoder(resp.Body, opts)
	for {
		env, err := dec.Next()
		if err == io.EOF {
			// Body end without a stop frame is still a normal end.
			return nil
		}
		if err != nil {
			return err
		}
		done, err := handle(env)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
