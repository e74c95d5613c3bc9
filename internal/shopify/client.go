package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mumbies/platform/pkg/clients"
)

// Credentials are passed explicitly on every call. The client keeps no
// token state, so nothing can leak between tenants or requests.
type Credentials struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

func (c Credentials) valid() bool {
	return c.ShopDomain != "" && c.AccessToken != "" && c.APIVersion != ""
}

var ErrMissingCredentials = errors.New("shopify admin credentials are not configured")

type Product struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Variants []Variant `json:"variants"`
}

type Variant struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

type Client struct {
	client clients.HTTPClientI
}

func NewClient(client clients.HTTPClientI) *Client {
	return &Client{client: client}
}

// ListProducts pulls one page of the shop catalog, keyset-paginated by
// since_id.
func (c *Client) ListProducts(ctx context.Context, creds Credentials, sinceID int64, limit int) ([]Product, error) {
	if !creds.valid() {
		return nil, ErrMissingCredentials
	}

	url := fmt.Sprintf("https://%s/admin/api/%s/products.json?limit=%d&since_id=%d",
		creds.ShopDomain, creds.APIVersion, limit, sinceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Shopify-Access-Token", creds.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shopify products request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopify products request returned %d", resp.StatusCode)
	}

	var parsed productsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse products response: %w", err)
	}
	return parsed.Products, nil
}
