package main

import (
	"net"
	"strconv"

	"github.com/ochinchina/homedash/config"
	"github.com/ochinchina/homedash/process"
	"github.com/ochinchina/homedash/weather"
	log "github.com/sirupsen/logrus"
)

// Dashboard ties the configuration store to the services behind the HTTP
// surface. Every request reads the current configuration snapshot, so a
// reload takes effect on the next request.
type Dashboard struct {
	store       *config.Store
	weather     *weather.Service
	launcher    *process.Launcher
	templateDir string
}

// NewDashboard creates a Dashboard from the given configuration file
func NewDashboard(configFile string) *Dashboard {
	store := config.NewStore(configFile)
	return &Dashboard{
		store:       store,
		weather:     weather.NewService(store),
		launcher:    process.NewLauncher(store),
		templateDir: "templates",
	}
}

// Config returns the current configuration snapshot
func (d *Dashboard) Config() *config.Config {
	return d.store.Get()
}

// Reload re-reads the configuration file and swaps it in wholesale
func (d *Dashboard) Reload() {
	d.store.Reload()
	log.Info("configuration reloaded")
}

// BindAddr returns the listen address from the settings, falling back to
// 0.0.0.0:5000
func (d *Dashboard) BindAddr() string {
	settings := d.Config().Settings
	ip := settings.GetString("IP", "0.0.0.0")
	port := settings.GetInt("Port", 5000)
	return net.JoinHostPort(ip, strconv.Itoa(port))
}
