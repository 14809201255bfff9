package main

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// DashboardWebgui serves the dashboard home page
type DashboardWebgui struct {
	router    *mux.Router
	dashboard *Dashboard
}

// NewDashboardWebgui returns object for DashboardWebgui
func NewDashboardWebgui(dashboard *Dashboard) *DashboardWebgui {
	router := mux.NewRouter()
	return &DashboardWebgui{router: router, dashboard: dashboard}
}

// CreateHandler handles the home page requests
func (dw *DashboardWebgui) CreateHandler() http.Handler {
	dw.router.HandleFunc("/", dw.HomePage).Methods("GET")
	return dw.router
}

// HomePage renders the template named by the HomePage setting
func (dw *DashboardWebgui) HomePage(w http.ResponseWriter, req *http.Request) {
	page := dw.dashboard.Config().Settings.GetString("HomePage", "index.html")
	tmpl, err := template.ParseFiles(filepath.Join(dw.dashboard.templateDir, page))
	if err != nil {
		log.WithFields(log.Fields{"page": page, log.ErrorKey: err}).Error("fail to load the home page template")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	tmpl.Execute(w, nil)
}
