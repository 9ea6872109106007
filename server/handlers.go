package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/secwatch/pkg/domain"
)

// commandTimeout is the extra write time granted to commands doing fetches
const commandTimeout = time.Minute

type commandReply struct {
	Reply string `json:"reply"`
}

type channelRequest struct {
	Channel string `json:"channel"`
}

type keywordsRequest struct {
	Keywords []string `json:"keywords"`
}

type scheduleRequest struct {
	Times []string `json:"times"`
}

// statusHandler returns server and scheduler status
func (s *Server) statusHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, rest.JSON{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"scheduler": s.commander.Status(),
	})
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	reply, err := s.commander.Stats(r.Context())
	s.renderReply(w, r, reply, err)
}

func (s *Server) enableDigestHandler(w http.ResponseWriter, r *http.Request) {
	var req channelRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	reply, err := s.commander.EnableDigest(r.Context(), domain.ChannelRef(req.Channel))
	s.renderReply(w, r, reply, err)
}

func (s *Server) disableDigestHandler(w http.ResponseWriter, r *http.Request) {
	reply, err := s.commander.DisableDigest(r.Context())
	s.renderReply(w, r, reply, err)
}

func (s *Server) runDigestHandler(w http.ResponseWriter, r *http.Request) {
	reply, err := s.commander.RunDigestNow(r.Context())
	s.renderReply(w, r, reply, err)
}

func (s *Server) enableWatchHandler(w http.ResponseWriter, r *http.Request) {
	var req channelRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	reply, err := s.commander.EnableEpisodeWatch(r.Context(), domain.ChannelRef(req.Channel))
	s.renderReply(w, r, reply, err)
}

func (s *Server) disableWatchHandler(w http.ResponseWriter, r *http.Request) {
	reply, err := s.commander.DisableEpisodeWatch(r.Context())
	s.renderReply(w, r, reply, err)
}

func (s *Server) setKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	var req keywordsRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	reply, err := s.commander.SetKeywords(r.Context(), req.Keywords)
	s.renderReply(w, r, reply, err)
}

func (s *Server) clearKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	reply, err := s.commander.ClearKeywords(r.Context())
	s.renderReply(w, r, reply, err)
}

func (s *Server) setScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	reply, err := s.commander.SetNotificationTimes(r.Context(), req.Times)
	s.renderReply(w, r, reply, err)
}

func (s *Server) toggleMentionHandler(w http.ResponseWriter, r *http.Request) {
	reply, err := s.commander.ToggleMention(r.Context())
	s.renderReply(w, r, reply, err)
}

// fetchNowHandler sends fresh articles of {source} ("all" or a feed alias) to the channel
func (s *Server) fetchNowHandler(w http.ResponseWriter, r *http.Request) {
	var req channelRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	reply, err := s.commander.FetchNow(r.Context(), r.PathValue("source"), domain.ChannelRef(req.Channel))
	s.renderReply(w, r, reply, err)
}

func (s *Server) latestEpisodesHandler(w http.ResponseWriter, r *http.Request) {
	var req channelRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	reply, err := s.commander.LatestEpisodes(r.Context(), domain.ChannelRef(req.Channel))
	s.renderReply(w, r, reply, err)
}

// renderReply sends command reply, config errors are reported as bad requests with their message
func (s *Server) renderReply(w http.ResponseWriter, r *http.Request, reply string, err error) {
	if err != nil {
		var ce *domain.ConfigError
		if errors.As(err, &ce) {
			rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, ce.Msg)
			return
		}
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusInternalServerError, err, "command failed")
		return
	}
	rest.RenderJSON(w, commandReply{Reply: reply})
}

// decodeRequest reads JSON body into v, sends bad request and returns false on failure
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, fmt.Sprintf("invalid request: %v", err))
		return false
	}
	return true
}
