package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns an http.ServeMux exposing the net/http/pprof handlers.
// The report server mounts it at /debug/pprof/, which is where the index
// handler expects to live, so no prefix stripping is needed.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
