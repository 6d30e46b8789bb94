// Package http provides http transport for service metadata
package http

import (
	stdhttp "net/http"

	"walletscan/internal/core/version"
	"walletscan/internal/modkit/httpkit"
)

// Info is the static service descriptor
type Info struct {
	Service string            `json:"service"`
	Assets  []string          `json:"assets"`
	Build   version.BuildInfo `json:"build"`
}

// Register mounts meta endpoints on the given router
func Register(r httpkit.Router, info Info) {
	httpkit.GetJSON(r, "/", func(*stdhttp.Request) (any, error) {
		return info, nil
	})
}
