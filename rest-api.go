package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ochinchina/homedash/process"
	"github.com/ochinchina/homedash/youtube"
)

// DashboardRestful exposes the configuration data and the dashboard actions
// as a JSON REST API
type DashboardRestful struct {
	router    *mux.Router
	dashboard *Dashboard
}

// animePlaceholder is returned by /api/anime until a real tracker source is
// wired in, the same way the youtube snapshot is
var animePlaceholder = []map[string]string{
	{
		"img":    "https://placehold.co/150x220?text=Anim+Test",
		"status": "Episode 7",
		"title":  "Test API",
		"url":    "about:blank",
	},
}

// NewDashboardRestful returns the REST API of the dashboard
func NewDashboardRestful(dashboard *Dashboard) *DashboardRestful {
	return &DashboardRestful{router: mux.NewRouter(), dashboard: dashboard}
}

// CreateHandler installs all the API routes and returns the handler
func (dr *DashboardRestful) CreateHandler() http.Handler {
	dr.router.HandleFunc("/api/weather", dr.GetWeather).Methods("GET")
	dr.router.HandleFunc("/api/socials", dr.GetSocials).Methods("GET")
	dr.router.HandleFunc("/api/anime", dr.GetAnime).Methods("GET")
	dr.router.HandleFunc("/api/youtube", dr.GetYoutube).Methods("GET")
	dr.router.HandleFunc("/api/settings", dr.GetSettings).Methods("GET")
	dr.router.HandleFunc("/api/apps", dr.GetApps).Methods("GET")
	dr.router.HandleFunc("/api/links", dr.GetLinks).Methods("GET")
	dr.router.HandleFunc("/run/{name}", dr.RunApp).Methods("POST")
	dr.router.HandleFunc("/reload_settings", dr.ReloadSettings).Methods("POST")
	return dr.router
}

// writeJSON encodes value without escaping, so non-ASCII characters reach
// the client as-is
func writeJSON(w http.ResponseWriter, statusCode int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.Encode(value)
}

// GetWeather returns the cached or freshly fetched weather payload. Upstream
// failures keep status 200, the failure is carried in the "error" field of
// the body.
func (dr *DashboardRestful) GetWeather(w http.ResponseWriter, req *http.Request) {
	data := dr.dashboard.weather.Get()
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetSocials returns the Socials configuration section
func (dr *DashboardRestful) GetSocials(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, dr.dashboard.Config().Socials)
}

// GetAnime returns the anime placeholder list
func (dr *DashboardRestful) GetAnime(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, animePlaceholder)
}

// GetYoutube returns the youtube snapshot as a list
func (dr *DashboardRestful) GetYoutube(w http.ResponseWriter, req *http.Request) {
	entries, err := youtube.Load(dr.dashboard.Config().YoutubeJSON)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetSettings returns the Settings configuration section
func (dr *DashboardRestful) GetSettings(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, dr.dashboard.Config().Settings)
}

// GetApps returns the Apps configuration section
func (dr *DashboardRestful) GetApps(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, dr.dashboard.Config().Apps)
}

// GetLinks returns the Links configuration section
func (dr *DashboardRestful) GetLinks(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, dr.dashboard.Config().Links)
}

// RunApp spawns the registered app named in the request path
func (dr *DashboardRestful) RunApp(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()

	name := mux.Vars(req)["name"]
	err := dr.dashboard.launcher.Launch(name)
	switch {
	case err == nil:
		appLaunches.WithLabelValues(name, "ok").Inc()
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case err == process.ErrAppNotFound:
		appLaunches.WithLabelValues(name, "not_found").Inc()
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "App not found"})
	default:
		appLaunches.WithLabelValues(name, "error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// ReloadSettings re-reads the configuration file
func (dr *DashboardRestful) ReloadSettings(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()

	dr.dashboard.Reload()
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}
