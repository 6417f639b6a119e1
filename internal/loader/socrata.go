package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/civicdata/permit-geocoder/internal/models"
)

// Datasets maps a friendly dataset name to its identifier on the Berkeley
// Open Data portal.
var Datasets = map[string]string{
	"business_licenses":      "rwnf-bu3w",
	"building_permits":       "ydr8-5enu",
	"zoning_permits":         "vkhm-tsvp",
	"planning_records":       "rk4r-58ys",
	"crime_incidents":        "k2nh-s5h5",
	"restaurant_inspections": "b47j-kakm",
}

// ErrUnknownDataset is returned for a dataset name not present in Datasets.
var ErrUnknownDataset = errors.New("unknown dataset")

// HTTPClient is the interface for making HTTP requests. It allows mocking
// in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// socrataPermit carries the portal's field names for one permit row.
type socrataPermit struct {
	PermitNumber string `json:"permit_number"`
	Address      string `json:"address_display"`
	Status       string `json:"status"`
	FiledDate    string `json:"filed_date"`
	IssuedDate   string `json:"issued_date"`
	NetUnits     string `json:"net_units"`
}

// SocrataClient fetches permit records from a Socrata open-data portal via
// the SODA API. Requests without an app token may be rate-limited by the
// portal.
type SocrataClient struct {
	client   HTTPClient   // client is the HTTP client for making requests.
	domain   string       // domain is the portal host.
	appToken string       // appToken is the optional API token.
	log      *slog.Logger // log is the logger for logging operations.
}

// NewSocrataClient creates a SocrataClient for the given portal domain.
func NewSocrataClient(domain, appToken string, log *slog.Logger) *SocrataClient {
	const timeout = 30
	return &SocrataClient{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		domain:   domain,
		appToken: appToken,
		log:      log,
	}
}

// NewSocrataClientWithClient creates a SocrataClient with a custom HTTP
// client. Useful for testing.
func NewSocrataClientWithClient(client HTTPClient, domain, appToken string, log *slog.Logger) *SocrataClient {
	return &SocrataClient{client: client, domain: domain, appToken: appToken, log: log}
}

// FetchPermits retrieves up to limit rows of the named dataset, optionally
// filtered with a SoQL where clause.
func (sc *SocrataClient) FetchPermits(
	ctx context.Context,
	dataset string,
	limit int,
	where string,
) ([]models.PermitRecord, error) {
	datasetID, ok := Datasets[dataset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, dataset)
	}

	reqURL := url.URL{
		Scheme: "https",
		Host:   sc.domain,
		Path:   "/resource/" + datasetID + ".json",
	}
	query := reqURL.Query()
	query.Set("$limit", strconv.Itoa(limit))
	if where != "" {
		query.Set("$where", where)
	}
	reqURL.RawQuery = query.Encode()

	sc.log.DebugContext(ctx, "Fetching dataset from open-data portal", "dataset", dataset, "url", reqURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if sc.appToken != "" {
		req.Header.Set("X-App-Token", sc.appToken)
	}

	resp, err := sc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute dataset request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		sc.log.ErrorContext(ctx, "Open-data portal error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("portal returned status %d: %s", resp.StatusCode, string(body))
	}

	var rows []socrataPermit
	if err = json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode portal response: %w", err)
	}

	records := make([]models.PermitRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.PermitRecord{
			PermitNumber: row.PermitNumber,
			Address:      row.Address,
			Status:       row.Status,
			FiledDate:    row.FiledDate,
			IssuedDate:   row.IssuedDate,
			NetUnits:     row.NetUnits,
		})
	}

	sc.log.InfoContext(ctx, "Fetched records from open-data portal", "dataset", dataset, "rows", len(records))

	return records, nil
}
