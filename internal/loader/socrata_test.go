package loader_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/civicdata/permit-geocoder/internal/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func TestSocrataClient_FetchPermits(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()

	t.Run("successful fetch with app token and filter", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				// Verify request parameters
				assert.Equal(t, "GET", req.Method)
				assert.Equal(t, "data.cityofberkeley.info", req.URL.Host)
				assert.Equal(t, "/resource/ydr8-5enu.json", req.URL.Path)
				assert.Equal(t, "50", req.URL.Query().Get("$limit"))
				assert.Equal(t, "filed_date > '2024-01-01'", req.URL.Query().Get("$where"))
				assert.Equal(t, "test-token", req.Header.Get("X-App-Token"))

				responseBody := `[{
					"permit_number": "B2024-01234",
					"address_display": "2700 Shattuck Ave",
					"status": "Permit Issued",
					"filed_date": "2024-02-01",
					"issued_date": "2024-06-15",
					"net_units": "12"
				}]`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
				}, nil
			},
		}

		client := loader.NewSocrataClientWithClient(mockClient, "data.cityofberkeley.info", "test-token", logger)
		records, err := client.FetchPermits(ctx, "building_permits", 50, "filed_date > '2024-01-01'")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "B2024-01234", records[0].PermitNumber)
		assert.Equal(t, "2700 Shattuck Ave", records[0].Address)
		assert.Equal(t, "Permit Issued", records[0].Status)
		assert.Equal(t, "2024-02-01", records[0].FiledDate)
		assert.Equal(t, "2024-06-15", records[0].IssuedDate)
		assert.Equal(t, "12", records[0].NetUnits)
	})

	t.Run("no app token header when token empty", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				_, present := req.Header["X-App-Token"]
				assert.False(t, present, "X-App-Token header must be absent")

				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`[]`)),
				}, nil
			},
		}

		client := loader.NewSocrataClientWithClient(mockClient, "data.cityofberkeley.info", "", logger)
		records, err := client.FetchPermits(ctx, "building_permits", 10, "")

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("unknown dataset name", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				t.Fatal("request must not be sent")
				return nil, nil
			},
		}

		client := loader.NewSocrataClientWithClient(mockClient, "data.cityofberkeley.info", "", logger)
		records, err := client.FetchPermits(ctx, "parking_meters", 10, "")

		require.Nil(t, records)
		require.ErrorIs(t, err, loader.ErrUnknownDataset)
	})

	t.Run("portal error status", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				responseBody := `{"error":true,"message":"Invalid SoQL query"}`
				return &http.Response{
					StatusCode: http.StatusBadRequest,
					Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
				}, nil
			},
		}

		client := loader.NewSocrataClientWithClient(mockClient, "data.cityofberkeley.info", "", logger)
		records, err := client.FetchPermits(ctx, "building_permits", 10, "bad query")

		require.Nil(t, records)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "portal returned status 400")
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`not json`)),
				}, nil
			},
		}

		client := loader.NewSocrataClientWithClient(mockClient, "data.cityofberkeley.info", "", logger)
		records, err := client.FetchPermits(ctx, "building_permits", 10, "")

		require.Nil(t, records)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode portal response")
	})

	t.Run("HTTP client error", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		client := loader.NewSocrataClientWithClient(mockClient, "data.cityofberkeley.info", "", logger)
		records, err := client.FetchPermits(ctx, "building_permits", 10, "")

		require.Nil(t, records)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute dataset request")
	})
}
