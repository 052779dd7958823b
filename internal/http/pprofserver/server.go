package pprofserver

import (
	"crypto/subtle"
	"net"
	"net/http"
	"net/http/pprof"
)

// Config stores pprof server settings.
type Config struct {
	User string
	Pass string
}

// Handler exposes the runtime profiles. Loopback callers pass straight
// through; anyone else must present basic auth credentials.
func Handler(cfg Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, name := range []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"} {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}
	return guard{next: mux, cfg: cfg}
}

type guard struct {
	next http.Handler
	cfg  Config
}

func (g guard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if loopback(r.RemoteAddr) || g.authorized(r) {
		g.next.ServeHTTP(w, r)
		return
	}
	w.Header().Set("WWW-Authenticate", `Basic realm="pprof"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func (g guard) authorized(r *http.Request) bool {
	if g.cfg.User == "" || g.cfg.Pass == "" {
		return false
	}
	user, pass, ok := r.BasicAuth()
	return ok && constEq(user, g.cfg.User) && constEq(pass, g.cfg.Pass)
}

func constEq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func loopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
