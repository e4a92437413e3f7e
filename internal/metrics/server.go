package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Serve exposes the metrics endpoint on the given port.
// It blocks, callers decide on which goroutine it runs.
func Serve(port int) error {
	http.Handle("/metrics", promhttp.Handler())
	log.Info().Int("port", port).Msg("serving metrics")
	return http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}
