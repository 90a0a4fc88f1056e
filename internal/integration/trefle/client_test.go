package trefle

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

const testBaseURL = "https://trefle.test/api/v1"

const monsteraJSON = `{
  "data": {
    "id": 182512,
    "common_name": "Swiss cheese plant",
    "scientific_name": "Monstera deliciosa",
    "image_url": "https://images.test/monstera.jpg",
    "main_species": {
      "family": "Araceae",
      "genus": "Monstera",
      "toxicity": "medium",
      "maximum_height": {"cm": null},
      "growth": {
        "soil_humidity": 6,
        "atmospheric_humidity": 8,
        "growth_rate": "fast",
        "light": 6,
        "soil_texture": null,
        "minimum_temperature": {"deg_c": 12, "deg_f": 54}
      },
      "specifications": {
        "maximum_height": {"cm": 450},
        "average_height": {"cm": null}
      }
    }
  }
}`

func setupHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

func newTestClient(cache Cache) *Client {
	return NewClient(Config{Token: " secret ", BaseURL: testBaseURL + "/", CacheTTL: time.Hour}, cache)
}

func TestLookup(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/plants/182512",
		func(req *http.Request) (*http.Response, error) {
			if req.URL.Query().Get("token") != "secret" {
				return httpmock.NewStringResponse(http.StatusUnauthorized, `{"error":true}`), nil
			}
			return httpmock.NewStringResponse(http.StatusOK, monsteraJSON), nil
		})

	attrs, err := newTestClient(nil).Lookup(context.Background(), 182512)
	require.NoError(t, err)

	assert.Equal(t, int64(182512), attrs.ExternalID)
	assert.Equal(t, "Monstera deliciosa", attrs.ScientificName)
	assert.Equal(t, "Araceae", attrs.Family)
	require.NotNil(t, attrs.SoilHumidity)
	assert.Equal(t, 6, *attrs.SoilHumidity)
	assert.Equal(t, "6", attrs.Light)
	assert.Equal(t, "fast", attrs.GrowthRate)
	assert.Empty(t, attrs.SoilTexture)
	require.NotNil(t, attrs.Toxicity)
	assert.Equal(t, "medium", *attrs.Toxicity)

	cm, ok := attrs.SpecificationMaxHeight.Centimetres()
	require.True(t, ok)
	assert.Equal(t, 450, cm)
	_, ok = attrs.SpeciesMaxHeight.Centimetres()
	assert.False(t, ok)

	profile := valueobject.DeriveCareProfile(*attrs)
	assert.Equal(t, 365, profile.RepotIntervalDays)
	assert.Equal(t, 18, profile.TemperatureMin)
	assert.Equal(t, 28, profile.TemperatureMax)
	assert.True(t, profile.IsToxic)
}

func TestLookupZeroValuesCountAsMissing(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/plants/1",
		httpmock.NewStringResponder(http.StatusOK, `{"data":{"id":1,"scientific_name":"Aloe vera",
			"main_species":{"growth":{"soil_humidity":0,"light":0,"minimum_temperature":{"deg_c":0}},
			"toxicity":null}}}`))

	attrs, err := newTestClient(nil).Lookup(context.Background(), 1)
	require.NoError(t, err)

	assert.Nil(t, attrs.SoilHumidity)
	assert.Empty(t, attrs.Light)
	assert.Nil(t, attrs.MinimumTemperatureC)
	assert.Nil(t, attrs.Toxicity)
}

func TestLookupBooleanToxicity(t *testing.T) {
	tests := []struct {
		raw   string
		toxic bool
	}{
		{raw: "false", toxic: false},
		{raw: "true", toxic: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			setupHTTPMock(t)
			httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/plants/2",
				httpmock.NewStringResponder(http.StatusOK, `{"data":{"id":2,"scientific_name":"Chlorophytum comosum",
					"main_species":{"toxicity":`+tt.raw+`}}}`))

			attrs, err := newTestClient(nil).Lookup(context.Background(), 2)
			require.NoError(t, err)

			assert.Equal(t, tt.toxic, valueobject.DeriveCareProfile(*attrs).IsToxic)
		})
	}
}

func TestLookupErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unknown species", status: http.StatusNotFound, body: `{"error":true,"message":"Record not found"}`, wantErr: domainerror.ErrSpeciesNotFound},
		{name: "null data", status: http.StatusOK, body: `{"data":null}`, wantErr: domainerror.ErrSpeciesNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: domainerror.ErrLookupFailure},
		{name: "rejected token", status: http.StatusUnauthorized, body: `{"error":true}`, wantErr: domainerror.ErrLookupFailure},
		{name: "malformed body", status: http.StatusOK, body: `{"data":`, wantErr: domainerror.ErrLookupFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHTTPMock(t)
			httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/plants/7",
				httpmock.NewStringResponder(tt.status, tt.body))

			_, err := newTestClient(nil).Lookup(context.Background(), 7)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLookupTransportFailure(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterNoResponder(httpmock.ConnectionFailure)

	_, err := newTestClient(nil).Lookup(context.Background(), 7)

	assert.ErrorIs(t, err, domainerror.ErrLookupFailure)
}

func TestSearch(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponderWithQuery(http.MethodGet, testBaseURL+"/plants/search",
		map[string]string{"q": "monstera", "token": "secret"},
		httpmock.NewStringResponder(http.StatusOK, `{"data":[
			{"id":182512,"common_name":"Swiss cheese plant","scientific_name":"Monstera deliciosa","family":"Araceae","genus":"Monstera"},
			{"id":182513,"common_name":null,"scientific_name":"Monstera adansonii"}
		]}`))

	results, err := newTestClient(nil).Search(context.Background(), "monstera")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, int64(182512), results[0].ExternalID)
	assert.Equal(t, "Swiss cheese plant", results[0].CommonName)
	assert.Empty(t, results[1].CommonName)
}

func TestResponsesAreCached(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/plants/182512",
		httpmock.NewStringResponder(http.StatusOK, monsteraJSON))
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/plants/9",
		httpmock.NewStringResponder(http.StatusNotFound, `{}`))

	recorder := &cacheRecorder{}
	client := NewClient(Config{
		Token:    "secret",
		BaseURL:  testBaseURL,
		CacheTTL: time.Hour,
		Recorder: recorder,
	}, &memoryCache{items: map[string][]byte{}})
	ctx := context.Background()

	for range 3 {
		_, err := client.Lookup(ctx, 182512)
		require.NoError(t, err)
	}
	for range 2 {
		_, err := client.Lookup(ctx, 9)
		require.ErrorIs(t, err, domainerror.ErrSpeciesNotFound)
	}

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["GET "+testBaseURL+"/plants/182512"])
	assert.Equal(t, 2, info["GET "+testBaseURL+"/plants/9"])
	assert.Equal(t, 2, recorder.hits)
	assert.Equal(t, 3, recorder.misses)
}

type cacheRecorder struct {
	hits, misses int
}

func (r *cacheRecorder) RecordCacheLookup(hit bool) {
	if hit {
		r.hits++
		return
	}
	r.misses++
}
