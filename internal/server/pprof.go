package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// PprofServer builds the profiling server for a separate port.
// It should only be reachable internally or via SSH tunnel.
func PprofServer(addr string) *http.Server {
	pprofRouter := gin.New()
	pprof.Register(pprofRouter)

	return &http.Server{
		Addr:              addr,
		Handler:           pprofRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
