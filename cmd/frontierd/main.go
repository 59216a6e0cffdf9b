// Command frontierd maintains the Orchard note commitment frontier:
// it accepts new bundles and answers root and size queries.
package main

import (
	"bytes"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/Madmaxs2/zcash/db"
	"github.com/Madmaxs2/zcash/db/memory"
	"github.com/Madmaxs2/zcash/orchard"
	"github.com/gorilla/mux"
)

var (
	configFile = flag.String("config", "", "Location of config file.")
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.LUTC)
	flag.Parse()

	// Load config from disk.
	if *configFile == "" {
		log.Fatalf("No config file provided, see --help.")
	}
	config, err := ReadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Open the store and restore the persisted frontier.
	var store db.FrontierStore
	if config.DatabaseFile == "" {
		log.Println("No database file configured, state will not persist.")
		store = memory.NewFrontierStore()
	} else {
		store, err = db.NewLDBFrontierStore(config.DatabaseFile)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
	}
	f, err := restoreFrontier(store)
	if err != nil {
		log.Fatalf("Failed to restore frontier: %v", err)
	}
	log.Printf("Restored frontier with %v leaves.", f.Size())

	// Start the appender thread.
	ch := make(chan AppendRequest)
	go appender(f, store, ch)

	if config.MetricsAddr != "" {
		go metrics(config.MetricsAddr)
	}

	// Setup handler for the API server.
	h := &Handler{config: config, store: store.Clone(), ch: ch}
	r := mux.NewRouter()
	r.HandleFunc("/", h.Home)
	r.HandleFunc("/v1/root", HandleAPI(h.Root)).Methods("GET")
	r.HandleFunc("/v1/size", HandleAPI(h.Size)).Methods("GET")
	r.HandleFunc("/v1/frontier", HandleAPI(h.Frontier)).Methods("GET")
	r.HandleFunc("/v1/frontier/legacy", HandleAPI(h.Legacy)).Methods("GET")
	r.HandleFunc("/v1/bundle", HandleAPI(h.AppendBundle)).Methods("POST")

	// Setup the API server.
	srv := &http.Server{
		Addr:    config.ServerAddr,
		Handler: r,

		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	log.Println("Starting API server.")
	log.Fatal(srv.ListenAndServe())
}

// restoreFrontier parses the persisted frontier head, or returns a fresh
// empty frontier if the store holds none.
func restoreFrontier(store db.FrontierStore) (*orchard.Frontier, error) {
	raw, err := store.GetFrontier()
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return orchard.NewFrontier(), nil
	}
	return orchard.ParseFrontier(bytes.NewReader(raw))
}
