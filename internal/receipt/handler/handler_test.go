package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvverti/serve-ex/internal/receipt"
	"github.com/kvverti/serve-ex/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := receipt.NewService(receipt.NewInMemoryStore())
	h := New(service, logger, nil)

	r := chi.NewRouter()
	h.Register(r)
	return r
}

type processResp struct {
	ID uuid.UUID `json:"id"`
}

type pointsResp struct {
	Points uint64 `json:"points"`
}

// runFullTrip submits a receipt, reads back its identifier, and fetches the
// points total for it.
func runFullTrip(t *testing.T, router http.Handler, receiptJSON string, expected uint64) {
	t.Helper()

	rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/receipts/process", receiptJSON))
	testutil.AssertStatus(t, rr, http.StatusOK)
	id := testutil.UnmarshalResponse[processResp](t, rr).ID
	require.NotEqual(t, uuid.Nil, id)

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, fmt.Sprintf("/receipts/%s/points", id), nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, expected, testutil.UnmarshalResponse[pointsResp](t, rr).Points)
}

func TestProcessAndPointsRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	t.Run("single item receipt", func(t *testing.T) {
		runFullTrip(t, router, `{
			"retailer": "Target",
			"purchaseDate": "2022-01-02",
			"purchaseTime": "13:13",
			"total": "1.25",
			"items": [
				{ "shortDescription": "Pepsi - 12-oz", "price": "1.25" }
			]
		}`, 31)
	})

	t.Run("five item receipt", func(t *testing.T) {
		runFullTrip(t, router, `{
			"retailer": "Target",
			"purchaseDate": "2022-01-01",
			"purchaseTime": "13:01",
			"items": [
				{ "shortDescription": "Mountain Dew 12PK", "price": "6.49" },
				{ "shortDescription": "Emils Cheese Pizza", "price": "12.25" },
				{ "shortDescription": "Knorr Creamy Chicken", "price": "1.26" },
				{ "shortDescription": "Doritos Nacho Cheese", "price": "3.35" },
				{ "shortDescription": "   Klarbrunn 12-PK 12 FL OZ  ", "price": "12.00" }
			],
			"total": "35.35"
		}`, 28)
	})

	t.Run("afternoon round total receipt", func(t *testing.T) {
		runFullTrip(t, router, `{
			"retailer": "M&M Corner Market",
			"purchaseDate": "2022-03-20",
			"purchaseTime": "14:33",
			"items": [
				{ "shortDescription": "Gatorade", "price": "2.25" },
				{ "shortDescription": "Gatorade", "price": "2.25" },
				{ "shortDescription": "Gatorade", "price": "2.25" },
				{ "shortDescription": "Gatorade", "price": "2.25" }
			],
			"total": "9.00"
		}`, 109)
	})
}

func TestProcessRejectsMalformedPayloads(t *testing.T) {
	router := newTestRouter(t)

	t.Run("non JSON body", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/receipts/process", "not json"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("missing field", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/receipts/process", `{
			"retailer": "Target",
			"purchaseDate": "2022-01-02",
			"purchaseTime": "13:13",
			"items": [ { "shortDescription": "Pepsi", "price": "1.25" } ]
		}`))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("malformed price string", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/receipts/process", `{
			"retailer": "Target",
			"purchaseDate": "2022-01-02",
			"purchaseTime": "13:13",
			"total": "1.2",
			"items": [ { "shortDescription": "Pepsi", "price": "1.25" } ]
		}`))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_input")
	})
}

func TestProcessRejectsUnacceptableReceipts(t *testing.T) {
	router := newTestRouter(t)

	t.Run("no items", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/receipts/process", `{
			"retailer": "Target",
			"purchaseDate": "2022-01-02",
			"purchaseTime": "13:13",
			"total": "1.25",
			"items": []
		}`))
		testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "validation_failed")
	})

	t.Run("ampersand in item description", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/receipts/process", `{
			"retailer": "Target",
			"purchaseDate": "2022-01-02",
			"purchaseTime": "13:13",
			"total": "1.25",
			"items": [ { "shortDescription": "salt & pepper", "price": "1.25" } ]
		}`))
		testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "validation_failed")
	})
}

func TestPointsLookupFailures(t *testing.T) {
	router := newTestRouter(t)

	t.Run("unknown identifier", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, fmt.Sprintf("/receipts/%s/points", uuid.New()), nil))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})

	t.Run("malformed identifier", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/receipts/not-a-uuid/points", nil))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}
