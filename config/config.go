package config

import (
	"strconv"
	"strings"
	"sync"
	"time"

	ini "github.com/ochinchina/go-ini"
	log "github.com/sirupsen/logrus"
)

// names of the sections loaded from the configuration file. The INI section
// "AppSettings" is exposed as "Settings".
const (
	sectionSettings = "AppSettings"
	sectionApps     = "Apps"
	sectionLinks    = "Links"
	sectionSocials  = "Socials"
)

// Section is one named group of key/value settings from the configuration file
type Section map[string]string

// GetString gets value of key as string
func (s Section) GetString(key string, defValue string) string {
	value, ok := s[key]
	if ok {
		return value
	}
	return defValue
}

// GetInt gets value of the key as int
func (s Section) GetInt(key string, defValue int) int {
	value, ok := s[key]
	if ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defValue
}

// GetBool gets value of key as bool
func (s Section) GetBool(key string, defValue bool) bool {
	value, ok := s[key]
	if ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defValue
}

// HasKey checks if the key is present in the section
func (s Section) HasKey(key string) bool {
	_, ok := s[key]
	return ok
}

// Config is one immutable snapshot of the dashboard configuration. It is
// replaced wholesale on reload, never mutated in place.
type Config struct {
	Settings Section
	Apps     Section
	Links    Section
	Socials  Section

	// file paths derived from Settings at load time
	YoutubeJSON string
	WeatherJSON string
}

// Load reads the configuration file and returns a new snapshot. A missing
// file or missing section yields empty sections, not an error.
func Load(configFile string) *Config {
	myini := ini.NewIni()
	log.WithFields(log.Fields{"file": configFile}).Info("load configuration from file")
	myini.LoadFile(configFile)

	c := &Config{
		Settings: loadSection(myini, sectionSettings),
		Apps:     loadSection(myini, sectionApps),
		Links:    loadSection(myini, sectionLinks),
		Socials:  loadSection(myini, sectionSocials),
	}
	c.YoutubeJSON = c.Settings.GetString("YoutubeJSON", "youtube_data.json")
	c.WeatherJSON = c.Settings.GetString("WeatherJSON", "weather_data.json")
	return c
}

// load one section into a map, keeping the original key case
func loadSection(cfg *ini.Ini, name string) Section {
	result := make(Section)
	section, err := cfg.GetSection(name)
	if err != nil {
		return result
	}
	for _, key := range section.Keys() {
		result[key.Name()] = strings.TrimSpace(key.ValueWithDefault(""))
	}
	return result
}

// RenewalInterval returns the configured data renewal interval. An absent or
// malformed DataRenewalInterval setting falls back to 6 minutes.
func (c *Config) RenewalInterval() time.Duration {
	minutes := c.Settings.GetInt("DataRenewalInterval", 6)
	if minutes <= 0 {
		minutes = 6
	}
	return time.Duration(minutes) * time.Minute
}

// Store holds the current configuration snapshot and replaces it in one
// atomic swap on reload so readers never observe a half-loaded configuration
type Store struct {
	configFile string
	lock       sync.RWMutex
	current    *Config
}

// NewStore creates a Store and loads the initial snapshot
func NewStore(configFile string) *Store {
	s := &Store{configFile: configFile}
	s.Reload()
	return s
}

// Get returns the current configuration snapshot
func (s *Store) Get() *Config {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.current
}

// Reload re-reads the configuration file and swaps in the new snapshot
func (s *Store) Reload() {
	c := Load(s.configFile)
	s.lock.Lock()
	s.current = c
	s.lock.Unlock()
}
