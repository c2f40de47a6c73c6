package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoerenD/equipment-calculator-web/internal/clients/catalog"
	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

const catalogJSON = `{
	"weapons": [
		{"name": "sword", "ap": 10, "weight": 5, "element": 0},
		{"name": "flametongue", "ap": 12, "weight": 6, "element": 1},
		{"name": "bow", "ap": 8, "weight": 4, "ranged": true, "element": 0, "required_level": 2}
	],
	"armor": [{"name": "plate", "vp": 10, "weight": 5, "element": 0}],
	"shields": [{"name": "buckler", "hp": 5, "weight": 3, "element": 2}],
	"helmets": [{"name": "cap", "mp": 5, "weight": 2, "element": 0}],
	"accessories": [{"name": "ring", "ap": 3, "weight": 1, "element": 6}]
}`

func TestNewHTTP(t *testing.T) {
	testCases := []struct {
		name    string
		config  *catalog.HTTPConfig
		wantErr string
	}{
		{name: "valid config", config: &catalog.HTTPConfig{URL: "http://localhost/items.json"}},
		{name: "nil config", config: nil, wantErr: "config cannot be nil"},
		{name: "file only", config: &catalog.HTTPConfig{FallbackFile: "items.json"}},
		{name: "no source at all", config: &catalog.HTTPConfig{}, wantErr: "either a catalog URL or a fallback file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := catalog.NewHTTP(tc.config)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestFetchCatalogsRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	client, err := catalog.NewHTTP(&catalog.HTTPConfig{URL: server.URL})
	require.NoError(t, err)

	catalogs, err := client.FetchCatalogs(context.Background())
	require.NoError(t, err)

	// Sentinel first, then the wire items in order.
	require.Len(t, catalogs.Weapons, 4)
	assert.True(t, catalogs.Weapons[0].IsEmpty())
	assert.Equal(t, "sword", catalogs.Weapons[1].Name)
	assert.Equal(t, equipment.ElementFire, catalogs.Weapons[2].Element)
	assert.True(t, catalogs.Weapons[3].Ranged)
	assert.Equal(t, 2, catalogs.Weapons[3].RequiredLevel)

	assert.Equal(t, equipment.ElementIce, catalogs.Shields[1].Element)
	assert.Equal(t, equipment.ElementEarthIce, catalogs.Accessories[1].Element)
	assert.Equal(t, 10, catalogs.Armor[1].VitalityPoints)
}

func TestFetchCatalogsFallsBackToFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	file := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(file, []byte(catalogJSON), 0o600))

	client, err := catalog.NewHTTP(&catalog.HTTPConfig{URL: server.URL, FallbackFile: file})
	require.NoError(t, err)

	catalogs, err := client.FetchCatalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sword", catalogs.Weapons[1].Name)
}

func TestFetchCatalogsFileOnly(t *testing.T) {
	file := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(file, []byte(catalogJSON), 0o600))

	client, err := catalog.NewHTTP(&catalog.HTTPConfig{FallbackFile: file})
	require.NoError(t, err)

	catalogs, err := client.FetchCatalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sword", catalogs.Weapons[1].Name)
}

func TestFetchCatalogsFallsBackToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := catalog.NewHTTP(&catalog.HTTPConfig{
		URL:          server.URL,
		FallbackFile: filepath.Join(t.TempDir(), "missing.json"),
	})
	require.NoError(t, err)

	catalogs, err := client.FetchCatalogs(context.Background())
	require.NoError(t, err)

	for _, slot := range equipment.Slots {
		catalog := catalogs.BySlot(slot)
		require.Len(t, catalog, 1, "slot %s", slot)
		assert.True(t, catalog[0].IsEmpty())
	}
}

func TestFetchCatalogsRejectsUnknownElementCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"weapons": [{"name": "glitch", "element": 99}]}`))
	}))
	defer server.Close()

	client, err := catalog.NewHTTP(&catalog.HTTPConfig{URL: server.URL})
	require.NoError(t, err)

	// A document with a bad element code is garbage, so the client
	// falls through to the empty catalogs.
	catalogs, err := client.FetchCatalogs(context.Background())
	require.NoError(t, err)
	require.Len(t, catalogs.Weapons, 1)
	assert.True(t, catalogs.Weapons[0].IsEmpty())
}
