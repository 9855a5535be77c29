package setup

import (
	"net"
	"net/http"
	"time"

	"github.com/IsaacDSC/eventory/internal/cfg"
	"github.com/IsaacDSC/eventory/pkg/auth"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/IsaacDSC/eventory/pkg/logs"
)

// NewServer mounts routes behind the CORS and logger middlewares.
func NewServer(port string, routes ...httpadapter.HttpHandle) *http.Server {
	mux := http.NewServeMux()
	httpadapter.Register(mux, routes...)

	return &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           CORSMiddleware(LoggerMiddleware(mux)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// AdminRoutes puts basic auth in front of operator routes when a password
// is configured.
func AdminRoutes(admin cfg.Admin, routes []httpadapter.HttpHandle) []httpadapter.HttpHandle {
	if admin.Password == "" {
		logs.Warn("ADMIN_PASSWORD is empty, admin routes are not protected")
		return routes
	}

	guard := auth.NewBasicAuth(map[string]string{admin.User: admin.Password})
	protected := make([]httpadapter.HttpHandle, 0, len(routes))
	for _, r := range routes {
		protected = append(protected, guard.Protect(r))
	}
	return protected
}
