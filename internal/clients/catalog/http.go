package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
	"github.com/SoerenD/equipment-calculator-web/internal/errors"
)

const defaultFetchTimeout = 10 * time.Second

// HTTPConfig contains configuration for the HTTP catalog client.
type HTTPConfig struct {
	// URL of the JSON catalog document. Optional when FallbackFile is
	// set: the client then serves from the file alone.
	URL string
	// FallbackFile is a local copy of the catalog document, used when
	// the URL is unreachable or returns garbage. Optional.
	FallbackFile string
	// HTTPClient defaults to a client with a 10s timeout.
	HTTPClient *http.Client
}

// Validate validates the HTTPConfig.
func (cfg *HTTPConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.URL == "" && cfg.FallbackFile == "" {
		return errors.InvalidArgument("either a catalog URL or a fallback file is required")
	}
	return nil
}

type httpClient struct {
	url          string
	fallbackFile string
	httpClient   *http.Client
}

// NewHTTP creates the HTTP catalog client. Fetches fall back to the
// local file and then to empty catalogs, so a refresh never fails
// outright over a flaky source.
func NewHTTP(cfg *HTTPConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultFetchTimeout}
	}

	return &httpClient{
		url:          cfg.URL,
		fallbackFile: cfg.FallbackFile,
		httpClient:   hc,
	}, nil
}

func (c *httpClient) FetchCatalogs(ctx context.Context) (*equipment.Catalogs, error) {
	if c.url != "" {
		catalogs, err := c.fetchRemote(ctx)
		if err == nil {
			return catalogs, nil
		}
		slog.Warn("remote catalog fetch failed, trying local file",
			"url", c.url, "error", err)
	}

	if c.fallbackFile != "" {
		catalogs, fileErr := c.fetchFile()
		if fileErr == nil {
			return catalogs, nil
		}
		slog.Warn("local catalog file unusable, falling back to empty catalogs",
			"file", c.fallbackFile, "error", fileErr)
	} else {
		slog.Warn("no local catalog file configured, falling back to empty catalogs")
	}

	return equipment.EmptyCatalogs(), nil
}

func (c *httpClient) fetchRemote(ctx context.Context) (*equipment.Catalogs, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	var doc catalogDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog document: %w", err)
	}

	return doc.toCatalogs()
}

func (c *httpClient) fetchFile() (*equipment.Catalogs, error) {
	data, err := os.ReadFile(c.fallbackFile)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	return doc.toCatalogs()
}
