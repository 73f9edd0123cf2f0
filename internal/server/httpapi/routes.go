package httpapi

import "net/http"

// route binds one endpoint to its handler and its guard policy.
type route struct {
	method  string
	pattern string
	guarded bool
	handler http.HandlerFunc
}

// routeTable is the single place where endpoint-to-guard assignment lives.
// Every endpoint this subsystem serves must be listed here with an explicit
// guarded value, so exposing an endpoint is a reviewable one-line diff rather
// than a forgotten middleware call.
func (s *Server) routeTable() []route {
	return []route{
		{http.MethodPost, "/auth/register", false, s.handleRegister},
		{http.MethodPost, "/auth/login", false, s.handleLogin},
		{http.MethodGet, "/users/me", true, s.handleMe},
		{http.MethodGet, "/ping", false, s.handlePing},
	}
}

// Handler assembles the mux from the route table and wraps it with the
// request-id and logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, r := range s.routeTable() {
		h := http.Handler(r.handler)
		if r.guarded {
			h = s.requireAuth(h)
		}
		mux.Handle(r.method+" "+r.pattern, h)
	}
	return s.withRequestID(s.withLogging(mux))
}
