// internal/proxy/router/router.go
package router

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"zumogate/internal/authz"
	"zumogate/internal/contextutil"
	"zumogate/internal/observability/logging"
	"zumogate/internal/observability/metrics"

	"github.com/gorilla/mux"
)

// Rule defines a routing rule
type Rule struct {
	// Name is a unique identifier for the rule
	Name string

	// Action determines what to do with matched requests:
	// "allow" proxies unconditionally, "deny" refuses, "auth" requires an
	// authenticated identity before proxying.
	Action string

	// Paths is a list of URL paths this rule applies to
	Paths []string

	// MatchPrefix indicates whether to match the path prefix instead of exact match
	MatchPrefix bool

	// Methods is a list of HTTP methods this rule applies to (empty = all methods)
	Methods []string

	// Permission is the permission label recorded for "auth" rules
	Permission string
}

// Router proxies requests to the upstream, applying routing rules against the
// identity the authentication middleware attached to the request context.
// Unmatched routes proxy through untouched: the gateway authenticates
// everything but only restricts what a rule names.
type Router struct {
	*mux.Router
	target      *httputil.ReverseProxy
	authorizer  authz.Authorizer
	rules       []Rule
	logger      *logging.Logger
	metrics     *metrics.Collector
	upstreamURL *url.URL
}

// Config holds router configuration
type Config struct {
	// UpstreamURL is the URL of the upstream service
	UpstreamURL *url.URL

	// UpstreamTimeout is the timeout for upstream service requests
	UpstreamTimeout time.Duration

	// Rules is the list of routing rules
	Rules []Rule
}

// New creates a new router
func New(config Config, authorizer authz.Authorizer, logger *logging.Logger, metricsCollector *metrics.Collector) *Router {
	target := httputil.NewSingleHostReverseProxy(config.UpstreamURL)
	target.Transport = &http.Transport{
		ResponseHeaderTimeout: config.UpstreamTimeout,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	r := &Router{
		Router:      mux.NewRouter(),
		target:      target,
		authorizer:  authorizer,
		rules:       config.Rules,
		logger:      logger.WithModule("proxy.router"),
		metrics:     metricsCollector,
		upstreamURL: config.UpstreamURL,
	}

	r.setupRoutes()

	return r
}

// setupRoutes configures routes based on rules
func (r *Router) setupRoutes() {
	proxyHandler := r.createProxyHandler()
	denyHandler := r.createDenyHandler()

	for _, rule := range r.rules {
		r.logger.Debug("Setting up route",
			"name", rule.Name,
			"action", rule.Action,
			"paths", rule.Paths,
			"methods", rule.Methods,
		)

		for _, path := range rule.Paths {
			var route *mux.Route
			if rule.MatchPrefix {
				route = r.PathPrefix(path)
			} else {
				route = r.Path(path)
			}

			if len(rule.Methods) > 0 {
				route = route.Methods(rule.Methods...)
			}

			route = route.Name(rule.Name)

			switch rule.Action {
			case "allow":
				route.Handler(proxyHandler)
			case "deny":
				route.Handler(denyHandler)
			case "auth":
				route.Handler(r.createAuthHandlerForRule(rule, proxyHandler))
			default:
				r.logger.Warn("Unknown action in rule, defaulting to deny",
					"rule", rule.Name, "action", rule.Action)
				route.Handler(denyHandler)
			}
		}
	}

	// Anything no rule names passes through, including method mismatches on
	// a ruled path. Authentication already ran; whether anonymous access is
	// acceptable is the upstream's decision.
	r.NotFoundHandler = proxyHandler
	r.MethodNotAllowedHandler = proxyHandler
}

// createProxyHandler creates the pass-through handler for unrestricted routes
func (r *Router) createProxyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ruleName := "default"
		if route := mux.CurrentRoute(req); route != nil && route.GetName() != "" {
			ruleName = route.GetName()
		}

		ctx := req.Context()
		logger := logging.LoggerFromContext(ctx)
		if logger == nil {
			logger = r.logger
		}

		logger.Debug("Proxying to upstream",
			"rule", ruleName,
			"path", req.URL.Path,
			"method", req.Method,
			"authenticated", contextutil.GetIdentity(ctx).IsAuthenticated(),
		)

		r.metrics.RecordRuleMatch(ruleName, "allow")

		startTime := time.Now()
		wrapper := newResponseWrapper(w)

		r.target.ServeHTTP(wrapper, req)

		r.metrics.RecordUpstreamRequest(req.Method, r.upstreamURL.String(), wrapper.statusCode, time.Since(startTime))
	})
}

// createDenyHandler creates a reusable handler for "deny" rules
func (r *Router) createDenyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ruleName := ""
		if route := mux.CurrentRoute(req); route != nil {
			ruleName = route.GetName()
		}

		ctx := req.Context()
		logger := logging.LoggerFromContext(ctx)
		if logger == nil {
			logger = r.logger
		}

		logger.Debug("Deny handler called",
			"rule", ruleName,
			"path", req.URL.Path,
			"method", req.Method,
		)

		r.metrics.RecordRuleMatch(ruleName, "deny")

		http.Error(w, "Forbidden", http.StatusForbidden)
	})
}

// createAuthHandlerForRule creates a handler for a specific "auth" rule
func (r *Router) createAuthHandlerForRule(rule Rule, proxyHandler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		logger := logging.LoggerFromContext(ctx)
		if logger == nil {
			logger = r.logger
		}

		identity := contextutil.GetIdentity(ctx)

		resp := r.authorizer.Authorize(&authz.Request{
			Identity:   identity,
			Permission: rule.Permission,
			Context:    ctx,
		})

		r.metrics.RecordRuleMatch(rule.Name, "auth")

		switch resp.Decision {
		case authz.Allow:
			logger.Debug("Authorization successful",
				"subject", identity.Subject(),
				"rule", rule.Name,
			)
			r.metrics.RecordAuthorization(rule.Permission, true)
			proxyHandler.ServeHTTP(w, req)

		case authz.Deny:
			logger.Info("Authorization failed: permission denied",
				"subject", identity.Subject(),
				"rule", rule.Name,
				"reason", resp.Reason,
			)
			r.metrics.RecordAuthorization(rule.Permission, false)
			http.Error(w, "Forbidden", http.StatusForbidden)

		case authz.Unauthorized:
			logger.Info("Authorization failed: unauthorized",
				"rule", rule.Name,
				"reason", resp.Reason,
			)
			r.metrics.RecordAuthorization(rule.Permission, false)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)

		case authz.Error:
			logger.Error("Authorization failed: error",
				logging.Err(resp.Error),
				"rule", rule.Name,
			)
			r.metrics.RecordAuthorization(rule.Permission, false)
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		}
	})
}

// responseWrapper is a wrapper for http.ResponseWriter that captures status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

// newResponseWrapper creates a new response wrapper
func newResponseWrapper(w http.ResponseWriter) *responseWrapper {
	return &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader captures the status code before passing to the underlying ResponseWriter
func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
