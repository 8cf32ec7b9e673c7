package main

import (
	"flag"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/backwardspy/battlesnake-doctor-strangle/api"
	"github.com/backwardspy/battlesnake-doctor-strangle/random"
	"github.com/backwardspy/battlesnake-doctor-strangle/strangle"
)

func main() {
	listen := flag.String("listen", ":3000", "HTTP listen address")
	logLevel := flag.String("log-level", "info", "log level (trace enables search tracing)")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("bad log level %q: %v", *logLevel, err)
	}
	log.SetLevel(level)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Mount("/strangle", api.Router(api.Info{
		Author:  "backwardspy",
		Color:   "#ff00ff",
		Head:    "missile",
		Tail:    "ion",
		Version: "2.0.0",
	}, strangle.New))
	r.Mount("/random", api.Router(api.Info{
		Author: "backwardspy",
		Color:  "#888888",
	}, random.New))

	log.Infof("listening on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, r))
}
