package weather

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ochinchina/homedash/config"
)

// build a store whose weather cache file lives in a temp dir
func newTestStore(t *testing.T, extraSettings string) (*config.Store, string) {
	dir, err := ioutil.TempDir("", "weather")
	if err != nil {
		t.Fatal("Fail to create temp dir")
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	weatherFile := filepath.Join(dir, "weather_data.json")
	content := fmt.Sprintf("[AppSettings]\nWeatherJSON=%s\n%s", weatherFile, extraSettings)
	iniFile := filepath.Join(dir, "config.ini")
	if err := ioutil.WriteFile(iniFile, []byte(content), os.ModePerm); err != nil {
		t.Fatal("Fail to write the configuration file")
	}
	return config.NewStore(iniFile), weatherFile
}

func errorField(t *testing.T, payload []byte) string {
	var v map[string]string
	if err := json.Unmarshal(payload, &v); err != nil {
		t.Fatalf("Payload is not a JSON object: %s", payload)
	}
	return v["error"]
}

func TestFetchWithoutAPIKey(t *testing.T) {
	store, _ := newTestStore(t, "")
	s := NewService(store)

	payload, ok := s.Fetch()
	if ok {
		t.Error("Fetch without an API key must not succeed")
	}
	if errorField(t, payload) != "No API key provided" {
		t.Error("Fail to report the missing API key")
	}
}

func TestFetchSuccess(t *testing.T) {
	body := `{"name":"Łódź","main":{"temp":21.5}}`
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.RequestURI()
		fmt.Fprint(w, body)
	}))
	defer ts.Close()

	store, _ := newTestStore(t, "WeatherAPIKey=k\nLatitude=51.7\nLongitude=19.4\n")
	s := NewService(store)
	s.baseURL = ts.URL

	payload, ok := s.Fetch()
	if !ok {
		t.Fatal("Fetch must succeed on status 200")
	}
	if string(payload) != body {
		t.Error("Payload must be the upstream body byte-for-byte")
	}
	if gotPath != "/data/2.5/weather?lat=51.7&lon=19.4&appid=k&units=metric" {
		t.Errorf("Unexpected request URI: %s", gotPath)
	}
}

func TestFetchBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	store, _ := newTestStore(t, "WeatherAPIKey=k\n")
	s := NewService(store)
	s.baseURL = ts.URL

	payload, ok := s.Fetch()
	if ok {
		t.Error("Fetch must not succeed on a non-200 status")
	}
	if errorField(t, payload) != "API request failed with status code 502" {
		t.Errorf("Unexpected error value: %s", payload)
	}
}

func TestFetchTransportError(t *testing.T) {
	store, _ := newTestStore(t, "WeatherAPIKey=k\n")
	s := NewService(store)
	// a closed server makes the client fail at the transport level
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	ts.Close()
	s.baseURL = ts.URL

	payload, ok := s.Fetch()
	if ok {
		t.Error("Fetch must not succeed on a transport error")
	}
	if errorField(t, payload) == "" {
		t.Error("Transport errors must be reported in the error field")
	}
}

func TestGetServesFreshCacheWithoutFetching(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		called = true
	}))
	defer ts.Close()

	store, weatherFile := newTestStore(t, "WeatherAPIKey=k\nDataRenewalInterval=6\n")
	cached := `{"name":"Łódź"}`
	ioutil.WriteFile(weatherFile, []byte(cached), os.ModePerm)
	old := time.Now().Add(-3 * time.Minute)
	os.Chtimes(weatherFile, old, old)

	s := NewService(store)
	s.baseURL = ts.URL

	data := s.Get()
	if called {
		t.Error("A fresh cache must not trigger an outbound call")
	}
	if string(data) != cached {
		t.Error("A fresh cache must be served verbatim")
	}
}

func TestGetRefreshesStaleCache(t *testing.T) {
	body := `{"name":"updated"}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer ts.Close()

	store, weatherFile := newTestStore(t, "WeatherAPIKey=k\nDataRenewalInterval=6\n")
	ioutil.WriteFile(weatherFile, []byte(`{"name":"old"}`), os.ModePerm)
	old := time.Now().Add(-10 * time.Minute)
	os.Chtimes(weatherFile, old, old)

	s := NewService(store)
	s.baseURL = ts.URL

	data := s.Get()
	if string(data) != body {
		t.Error("A stale cache must trigger a fetch")
	}
	onDisk, _ := ioutil.ReadFile(weatherFile)
	if string(onDisk) != body {
		t.Error("A successful fetch must replace the cache file")
	}
}

func TestFailedFetchKeepsLastGoodCache(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	store, weatherFile := newTestStore(t, "WeatherAPIKey=k\nDataRenewalInterval=6\n")
	cached := `{"name":"last-good"}`
	ioutil.WriteFile(weatherFile, []byte(cached), os.ModePerm)
	old := time.Now().Add(-10 * time.Minute)
	os.Chtimes(weatherFile, old, old)

	s := NewService(store)
	s.baseURL = ts.URL

	data := s.Get()
	if errorField(t, data) == "" {
		t.Error("The failed fetch must be reported as an error value")
	}
	onDisk, _ := ioutil.ReadFile(weatherFile)
	if string(onDisk) != cached {
		t.Error("A failed fetch must not touch the cache file")
	}
}

func TestGetFetchesWhenCacheMissing(t *testing.T) {
	body := `{"name":"first"}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer ts.Close()

	store, weatherFile := newTestStore(t, "WeatherAPIKey=k\n")
	s := NewService(store)
	s.baseURL = ts.URL

	data := s.Get()
	if string(data) != body {
		t.Error("A missing cache must trigger a fetch")
	}
	if _, err := os.Stat(weatherFile); err != nil {
		t.Error("A successful fetch must create the cache file")
	}
}
