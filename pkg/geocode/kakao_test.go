// pkg/geocode/kakao_test.go
package geocode

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/search/address.json", r.URL.Path)
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "화성시 팔탄면 구장리", r.URL.Query().Get("query"))
		w.Write([]byte(`{"documents":[{"x":"126.912","y":"37.178"}]}`))
	}))
	defer server.Close()

	c := NewClientWithBase("test-key", server.URL)
	coords, err := c.Resolve("화성시 팔탄면 구장리")

	assert.NoError(t, err)
	assert.NotNil(t, coords)
	assert.Equal(t, 37.178, coords.Lat)
	assert.Equal(t, 126.912, coords.Lng)
}

func TestResolveUnknownAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"documents":[]}`))
	}))
	defer server.Close()

	c := NewClientWithBase("test-key", server.URL)
	coords, err := c.Resolve("없는 주소")

	assert.NoError(t, err)
	assert.Nil(t, coords)
}

func TestResolveWithoutKey(t *testing.T) {
	c := NewClient("")
	assert.False(t, c.Enabled())

	coords, err := c.Resolve("화성시")
	assert.NoError(t, err)
	assert.Nil(t, coords)
}

func TestResolveServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewClientWithBase("bad-key", server.URL)
	coords, err := c.Resolve("화성시")

	assert.NoError(t, err)
	assert.Nil(t, coords)
}
