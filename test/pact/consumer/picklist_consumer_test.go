//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/stockroom/stockroom-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type pickInstructionPayload struct {
	ProductName        string            `json:"productName"`
	ProductID          string            `json:"productId"`
	QuantityToPick     int32             `json:"quantityToPick"`
	AvailableLocations []locationPayload `json:"availableLocations"`
}

type locationPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type pickListPayload struct {
	OrderID      string                   `json:"orderId"`
	Instructions []pickInstructionPayload `json:"instructions"`
}

func TestPickerAppContract(t *testing.T) {
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
	instructionMatcher := matchers.Map{
		"productName":    matchers.Like(pacttest.WidgetProductName),
		"productId":      matchers.Like(pacttest.WidgetProductID),
		"quantityToPick": matchers.Like(3),
		"availableLocations": matchers.ArrayMinLike(matchers.Map{
			"id":      matchers.Like(pacttest.ShelfLocationID),
			"name":    matchers.Like(pacttest.ShelfLocationName),
			"address": matchers.Like("Aisle 1"),
		}, 1),
	}

	pact.AddInteraction().
		Given(pacttest.StateOrderWithItems).
		UponReceiving("a request for the pick list of an existing order").
		WithRequest("GET", fmt.Sprintf("/v1/orders/%s/picklist", pacttest.ExistingOrderID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"orderId":      matchers.Like(pacttest.ExistingOrderID),
				"instructions": matchers.ArrayMinLike(instructionMatcher, 1),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderMissing).
		UponReceiving("a request for the pick list of an unknown order").
		WithRequest("GET", fmt.Sprintf("/v1/orders/%s/picklist", pacttest.MissingOrderID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"orderId": matchers.Like(pacttest.MissingOrderID),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newPickListClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		picklist, err := client.GetPickList(ctx, pacttest.ExistingOrderID)
		if err != nil {
			return fmt.Errorf("get pick list: %w", err)
		}
		if len(picklist.Instructions) == 0 {
			return fmt.Errorf("expected at least one pick instruction")
		}
		if picklist.Instructions[0].ProductName == "" {
			return fmt.Errorf("expected a product name on the first instruction")
		}

		empty, err := client.GetPickList(ctx, pacttest.MissingOrderID)
		if err != nil {
			return fmt.Errorf("get pick list for unknown order: %w", err)
		}
		if empty.OrderID != pacttest.MissingOrderID {
			return fmt.Errorf("expected order id %s, got %s", pacttest.MissingOrderID, empty.OrderID)
		}

		return nil
	})
	require.NoError(t, err)
}

type pickListClient struct {
	baseURL    string
	httpClient *http.Client
}

func newPickListClient(config pactconsumer.MockServerConfig) *pickListClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &pickListClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *pickListClient) GetPickList(ctx context.Context, orderID string) (*pickListPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/orders/%s/picklist", c.baseURL, orderID), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var payload pickListPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
