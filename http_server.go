package main

import (
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// HTTPServer exposes the dashboard API, the home page and the metrics over
// one listener
type HTTPServer struct {
	ln net.Listener
}

// NewHTTPServer returns a stopped HTTPServer
func NewHTTPServer() *HTTPServer {
	return &HTTPServer{}
}

// Stop stops network listening
func (p *HTTPServer) Stop() {
	log.Info("stop http server")
	if p.ln != nil {
		p.ln.Close()
		p.ln = nil
	}
}

// Start starts the http server on listenAddr and serves until the listener
// is closed
func (p *HTTPServer) Start(listenAddr string, dashboard *Dashboard) error {
	if p.ln != nil {
		return nil
	}

	mux := http.NewServeMux()
	restHandler := NewDashboardRestful(dashboard).CreateHandler()
	mux.Handle("/api/", restHandler)
	mux.Handle("/run/", restHandler)
	mux.Handle("/reload_settings", restHandler)
	prometheus.MustRegister(NewDashCollector(dashboard))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", NewDashboardWebgui(dashboard).CreateHandler())

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.WithFields(log.Fields{"addr": listenAddr, log.ErrorKey: err}).Error("fail to listen on address")
		return err
	}
	p.ln = listener
	log.WithFields(log.Fields{"addr": listenAddr}).Info("start http server")
	return http.Serve(listener, mux)
}
