package handlers

import (
	"net/http"
	"strings"
)

type Router struct {
	home     *HomeHandler
	feedback *FeedbackHandler
	scan     *ScanHandler
}

func NewRouter(home *HomeHandler, feedback *FeedbackHandler, scan *ScanHandler) *Router {
	return &Router{
		home:     home,
		feedback: feedback,
		scan:     scan,
	}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/home/weather":
		rt.home.GetWeather(w, r)
	case path == sessionsPath:
		rt.home.StartSession(w, r)
	case strings.HasPrefix(path, sessionsPath+"/"):
		rt.home.Session(w, r)
	case path == "/home/history":
		rt.home.GetHistory(w, r)
	case path == "/feedback":
		rt.feedback.ServeHTTP(w, r)
	case path == "/scan":
		rt.scan.Classify(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}
