// Package auth guards operator-only routes with HTTP basic authentication.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
)

var (
	ErrMissingAuthHeader   = errors.New("missing authorization header")
	ErrInvalidAuthHeader   = errors.New("invalid authorization header format")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
)

type operatorKey struct{}

// Operator returns the authenticated username stored by Protect.
func Operator(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(operatorKey{}).(string)
	return username, ok
}

// BasicAuth holds username -> password pairs.
type BasicAuth struct {
	users map[string]string
}

func NewBasicAuth(users map[string]string) *BasicAuth {
	if users == nil {
		users = make(map[string]string)
	}
	return &BasicAuth{users: users}
}

func (ba *BasicAuth) validate(username, password string) bool {
	stored, exists := ba.users[username]
	if !exists {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

func parseBasic(header string) (username, password string, err error) {
	if header == "" {
		return "", "", ErrMissingAuthHeader
	}

	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", ErrUnsupportedAuthType
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil || len(decoded) == 0 {
		return "", "", ErrInvalidAuthHeader
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrInvalidAuthHeader
	}
	return username, password, nil
}

// Authenticate checks an Authorization header and returns the username.
func (ba *BasicAuth) Authenticate(header string) (string, error) {
	username, password, err := parseBasic(header)
	if err != nil {
		return "", err
	}
	if !ba.validate(username, password) {
		return "", ErrInvalidCredentials
	}
	return username, nil
}

// Protect wraps a route so that only known operators reach it. The operator
// name is added to the request logger.
func (ba *BasicAuth) Protect(route httpadapter.HttpHandle) httpadapter.HttpHandle {
	next := route.Handler
	route.Handler = func(w http.ResponseWriter, r *http.Request) {
		username, err := ba.Authenticate(r.Header.Get("Authorization"))
		if err != nil {
			ctxlogger.GetLogger(r.Context()).Warn("Rejected operator request", "path", r.URL.Path, "error", err)
			w.Header().Set("WWW-Authenticate", `Basic realm="eventory"`)
			httpadapter.WriteError(w, http.StatusUnauthorized, err)
			return
		}

		ctx := context.WithValue(r.Context(), operatorKey{}, username)
		ctx = ctxlogger.With(ctx, "operator", username)
		next(w, r.WithContext(ctx))
	}
	return route
}
