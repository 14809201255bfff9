package weather

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/ochinchina/homedash/cache"
	"github.com/ochinchina/homedash/config"
	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the OpenWeatherMap endpoint queried for current weather
const DefaultBaseURL = "https://api.openweathermap.org"

// Service fetches current weather for the configured coordinates and keeps
// the last successful payload in a file-backed cache. Upstream failures are
// returned as {"error": ...} JSON values, not as Go errors, and are never
// persisted to the cache file.
type Service struct {
	store   *config.Store
	baseURL string
	client  *http.Client
}

// NewService creates the weather service on top of the configuration store
func NewService(store *config.Store) *Service {
	return &Service{store: store, baseURL: DefaultBaseURL, client: http.DefaultClient}
}

// Fetch calls the weather API once and returns the payload. ok is true only
// if the upstream answered with status 200, so callers know whether the
// payload may be cached.
func (s *Service) Fetch() (payload []byte, ok bool) {
	settings := s.store.Get().Settings
	apiKey := settings.GetString("WeatherAPIKey", "")
	if apiKey == "" {
		return errorValue("No API key provided"), false
	}
	lat := settings.GetString("Latitude", "0")
	lon := settings.GetString("Longitude", "0")

	url := fmt.Sprintf("%s/data/2.5/weather?lat=%s&lon=%s&appid=%s&units=metric", s.baseURL, lat, lon, apiKey)
	resp, err := s.client.Get(url)
	if err != nil {
		log.WithFields(log.Fields{log.ErrorKey: err}).Error("fail to fetch the weather data")
		return errorValue(err.Error()), false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorValue(fmt.Sprintf("API request failed with status code %d", resp.StatusCode)), false
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errorValue(err.Error()), false
	}
	return body, true
}

// Get returns the cached payload when it is still fresh, otherwise fetches a
// new one. A successful fetch replaces the cache file with the payload
// byte-for-byte; a failed fetch leaves the old file untouched and returns the
// error value to the caller.
func (s *Service) Get() []byte {
	fc := s.Cache()
	state := fc.CheckState(s.store.Get().RenewalInterval())
	if state == cache.Fresh {
		if data, err := fc.Read(); err == nil {
			if age, ok := fc.Age(); ok {
				log.WithFields(log.Fields{"age": age.Truncate(time.Second)}).Debug("weather cache is up-to-date")
			}
			return data
		}
		// the fresh file vanished under us, fall through to a fetch
	}

	log.WithFields(log.Fields{"state": state}).Debug("weather cache needs refresh")
	data, ok := s.Fetch()
	if ok {
		if err := fc.Write(data); err != nil {
			log.WithFields(log.Fields{log.ErrorKey: err, "file": fc.Path}).Error("fail to save the weather cache")
		} else {
			log.WithFields(log.Fields{"file": fc.Path}).Info("weather data downloaded")
		}
	}
	return data
}

// Cache returns the file cache behind the currently configured weather file
func (s *Service) Cache() *cache.FileCache {
	return cache.New(s.store.Get().WeatherJSON)
}

func errorValue(msg string) []byte {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return b
}
