//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/stockroom/stockroom-api/test/pact"

	stockroomserver "github.com/stockroom/stockroom-api/go"
	catalogmemory "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/memory"
	catalogdomain "github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	ordersmemory "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/memory"
	ordersdomain "github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	pickingobs "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/observability"
	pickingsources "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/sources"
	pickingworkflows "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/workflows"
	pickingapp "github.com/stockroom/stockroom-api/internal/domains/picking/application"
	warehousememory "github.com/stockroom/stockroom-api/internal/domains/warehouse/adapters/memory"
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStockroomProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateOrderWithItems: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedStockedOrder(t)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	orders    *ordersmemory.Repository
	products  *catalogmemory.Repository
	locations *warehousememory.Repository
	server    *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	orderRepo := ordersmemory.NewRepository()
	productRepo := catalogmemory.NewRepository()
	locationRepo := warehousememory.NewRepository()

	sources := pickingsources.NewRepositorySources(orderRepo, productRepo, locationRepo)
	pickingService := pickingobs.New(pickingapp.NewResolver(sources, sources, sources))
	workflows := pickingworkflows.NewInlinePickWorkflows(pickingService)

	handlers := stockroomserver.ApiHandleFunctions{
		PickingAPI: stockroomserver.NewPickingAPI(pickingService, workflows),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = stockroomserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		orders:    orderRepo,
		products:  productRepo,
		locations: locationRepo,
		server:    server,
	}
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	orders, err := a.orders.List(ctx)
	require.NoError(t, err)
	for _, order := range orders {
		_ = a.orders.Delete(ctx, order.ID)
	}
	products, err := a.products.List(ctx)
	require.NoError(t, err)
	for _, product := range products {
		_ = a.products.Delete(ctx, product.ID)
	}
	locations, err := a.locations.List(ctx)
	require.NoError(t, err)
	for _, location := range locations {
		_ = a.locations.Delete(ctx, location.ID)
	}
}

func (a *contractProviderApp) seedStockedOrder(t testing.TB) {
	t.Helper()
	ctx := context.Background()

	product, err := catalogdomain.NewProduct(pacttest.WidgetProductID, pacttest.WidgetProductName, "WID-001", decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = a.products.Save(ctx, product)
	require.NoError(t, err)

	shelf, err := warehousedomain.NewStorageLocation(pacttest.ShelfLocationID, pacttest.ShelfLocationName, "Aisle 1", nil, "")
	require.NoError(t, err)
	_, err = a.locations.Save(ctx, shelf)
	require.NoError(t, err)
	require.NoError(t, a.locations.AssignProduct(ctx, pacttest.WidgetProductID, pacttest.ShelfLocationID))

	order, err := ordersdomain.NewOrder(pacttest.ExistingOrderID, "CUST-1", time.Now().UTC(), decimal.NewFromInt(30), ordersdomain.StatusPlaced, []ordersdomain.OrderItem{
		{ProductID: pacttest.WidgetProductID, Quantity: 3},
	})
	require.NoError(t, err)
	_, err = a.orders.Save(ctx, order)
	require.NoError(t, err)
}
