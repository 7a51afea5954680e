package api

import "showcase-cli/internal/service"

// ShowcaseAPI defines the interface for the showcase backend client.
// *Client satisfies this interface. TUI and tests can use mock
// implementations.
type ShowcaseAPI interface {
	SuggestedQuestions() ([]string, error)

	ChatStream(req ChatRequest, cb func(service.ChatEvent)) error
	ProductStream(limit int, cb func(service.ItemEvent)) error
	SiteItemStream(prompt, itemType string, limit int, generateImages bool, cb func(service.ItemEvent)) error
	IdeaStream(prompt string, limit int, cb func(service.ItemEvent)) error
	IdeaDetailStream(title string, cb func(service.IdeaEvent)) error
	ProductDetailStream(name string, cb func(service.ProductEvent)) error

	AddProduct(p Product) error
	UpdateProduct(name string, p Product) error
	DeleteProduct(name string) error

	ListTabs() ([]Tab, error)
	CreateTab(t Tab) (*Tab, error)
	UpdateTab(id string, t Tab) error
	DeleteTab(id string) error
}

var _ ShowcaseAPI = (*Client)(nil)
