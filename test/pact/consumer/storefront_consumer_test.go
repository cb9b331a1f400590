//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/slicelab/pizza-store-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type confirmationPayload struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestStorefrontContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	menuBodyMatcher := matchers.Map{
		"pizzas": matchers.ArrayMinLike(matchers.Map{
			"id":        matchers.Like(1),
			"name":      matchers.Like("Margherita"),
			"basePrice": matchers.Like(10.0),
		}, 1),
		"sizes": matchers.ArrayMinLike(matchers.Map{
			"name":       matchers.Like("Medium"),
			"multiplier": matchers.Like(1.0),
		}, 1),
		"toppings": matchers.ArrayMinLike(matchers.Map{
			"name":  matchers.Like("Extra Cheese"),
			"price": matchers.Like(1.5),
		}, 1),
	}

	cartBodyMatcher := matchers.Map{
		"items": matchers.ArrayMinLike(matchers.Map{
			"id":        matchers.Like("a7f0b9e2-a7fd-4f0e-b7a3-1b7f0b9e2a7f"),
			"pizzaId":   matchers.Like(2),
			"size":      matchers.Like("Large"),
			"quantity":  matchers.Like(1),
			"unitPrice": matchers.Regex("18.60", `\d+\.\d{2}`),
		}, 1),
		"summary": matchers.StructMatcher{
			"subtotal":    matchers.Regex("18.60", `\d+\.\d{2}`),
			"tax":         matchers.Regex("1.49", `\d+\.\d{2}`),
			"deliveryFee": matchers.Regex("3.99", `\d+\.\d{2}`),
			"total":       matchers.Regex("24.08", `\d+\.\d{2}`),
			"itemCount":   matchers.Like(1),
		},
	}

	pact.AddInteraction().
		Given(pacttest.StateMenuAvailable).
		UponReceiving("a request for the menu").
		WithRequest("GET", "/api/menu").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(menuBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateCartBaseline).
		UponReceiving("a request to add a pizza to the cart").
		WithRequest("POST", "/api/cart/items", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.Header("X-Session-ID", matchers.S(pacttest.ExampleSessionID))
			b.JSONBody(matchers.Map{
				"pizzaId":  matchers.Like(2),
				"size":     matchers.Term("Large", "Small|Medium|Large|Extra Large"),
				"quantity": matchers.Like(1),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(cartBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderMissing).
		UponReceiving("a request for a missing order").
		WithRequest("GET", "/api/orders/"+pacttest.MissingOrderID).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newStorefrontClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.GetMenu(ctx); err != nil {
			return fmt.Errorf("get menu: %w", err)
		}

		if err := client.AddCartItem(ctx, pacttest.ExampleCartItemPayload()); err != nil {
			return fmt.Errorf("add cart item: %w", err)
		}

		if err := client.GetOrder(ctx, pacttest.MissingOrderID); err == nil {
			return fmt.Errorf("expected 404 for order %s", pacttest.MissingOrderID)
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", apiErr.Status())
		}

		return nil
	})
	require.NoError(t, err)
}

type storefrontClient struct {
	baseURL    string
	httpClient *http.Client
}

func newStorefrontClient(config pactconsumer.MockServerConfig) *storefrontClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &storefrontClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *storefrontClient) GetMenu(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/menu", nil)
	if err != nil {
		return err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(res)
	}
	return nil
}

func (c *storefrontClient) AddCartItem(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/cart/items", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", pacttest.ExampleSessionID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(res)
	}
	return nil
}

func (c *storefrontClient) GetOrder(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/orders/"+id, nil)
	if err != nil {
		return err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(res)
	}
	var payload confirmationPayload
	return json.NewDecoder(res.Body).Decode(&payload)
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
