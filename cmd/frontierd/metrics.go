package main

import (
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Version = "dev"

var (
	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "A metric with a constant '1' value labeled by version, and goversion.",
		},
		[]string{"version", "goversion"},
	)
	appendOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "append_operations",
			Help: "Incremented for each append operation, labeled by success or failure.",
		},
		[]string{"success"},
	)
	appendDur = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name: "append_duration",
			Help: "Summary of how long an append operation takes to complete.",
		},
	)
	treeSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tree_size",
			Help: "The number of note commitments in the tree.",
		},
	)
)

func metrics(addr string) {
	buildInfo.WithLabelValues(Version, runtime.Version()).Set(1)
	prometheus.MustRegister(buildInfo)
	prometheus.MustRegister(appendOps)
	prometheus.MustRegister(appendDur)
	prometheus.MustRegister(treeSize)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(rw http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/" {
			fmt.Fprintln(rw, "Hi, I'm a frontierd metrics and debugging server!")
		} else {
			rw.WriteHeader(404)
			fmt.Fprintln(rw, "404 not found")
		}
	})
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	log.Printf("Starting metrics server at: %v", addr)
	log.Fatal(srv.ListenAndServe())
}
