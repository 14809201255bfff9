package main

import (
	"github.com/ochinchina/homedash/cache"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "homedash"

// appLaunches counts the launch attempts made through the /run endpoint
var appLaunches = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "app_launches_total",
		Help:      "Number of app launch attempts",
	},
	[]string{"app", "result"},
)

func init() {
	prometheus.MustRegister(appLaunches)
}

// dashCollector exposes the state of the weather cache
type dashCollector struct {
	cacheFreshDesc *prometheus.Desc
	cacheAgeDesc   *prometheus.Desc
	dashboard      *Dashboard
}

// NewDashCollector returns new Collector exposing dashboard statistics
func NewDashCollector(dashboard *Dashboard) *dashCollector {
	var (
		subsystem  = "cache"
		labelNames = []string{"file"}
	)

	return &dashCollector{
		cacheFreshDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "fresh"),
			"Cache file freshness",
			labelNames,
			nil,
		),
		cacheAgeDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "age_seconds"),
			"Cache file age",
			labelNames,
			nil,
		),
		dashboard: dashboard,
	}
}

// Describe generates prometheus metric description
func (c *dashCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cacheFreshDesc
	ch <- c.cacheAgeDesc
}

// Collect gathers prometheus metrics for the weather cache
func (c *dashCollector) Collect(ch chan<- prometheus.Metric) {
	cfg := c.dashboard.Config()
	fc := cache.New(cfg.WeatherJSON)
	labels := []string{fc.Path}

	fresh := 0.0
	if fc.CheckState(cfg.RenewalInterval()) == cache.Fresh {
		fresh = 1
	}
	ch <- prometheus.MustNewConstMetric(c.cacheFreshDesc, prometheus.GaugeValue, fresh, labels...)

	if age, ok := fc.Age(); ok {
		ch <- prometheus.MustNewConstMetric(c.cacheAgeDesc, prometheus.GaugeValue, age.Seconds(), labels...)
	}
}
