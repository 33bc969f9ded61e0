/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Seednode/wordraw/history"
	"github.com/julienschmidt/httprouter"
)

type historyResponse struct {
	Results []history.Result `json:"results"`
}

type wordsResponse struct {
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

type statsResponse struct {
	Games int `json:"games"`
}

func serveHistory(cfg *Config, gm *GameManager, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		limit := cfg.historySize
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writeJSON(cfg, w, http.StatusBadRequest, ErrorMessage{Type: "error", Message: "invalid limit"}, errs)
				return
			}
			limit = min(n, cfg.historySize)
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		results, err := gm.store.Recent(ctx, limit)
		if err != nil {
			errorf(cfg, "SERVE: Unable to list history for %s: %v", realIP(r), err)
			writeJSON(cfg, w, http.StatusInternalServerError, ErrorMessage{Type: "error", Message: "history unavailable"}, errs)
			return
		}

		writeJSON(cfg, w, http.StatusOK, historyResponse{Results: results}, errs)

		logf(cfg, "SERVE: History (%d results) to %s in %s",
			len(results),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveWords(cfg *Config, gm *GameManager, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		writeJSON(cfg, w, http.StatusOK, wordsResponse{
			Count:      gm.bank.Len(),
			Categories: gm.bank.Categories(),
		}, errs)
	}
}

func serveStats(cfg *Config, gm *GameManager, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		writeJSON(cfg, w, http.StatusOK, statsResponse{Games: gm.count()}, errs)
	}
}

func registerAPI(cfg *Config, gm *GameManager, mux *httprouter.Router, errs chan<- error) {
	mux.GET(cfg.prefix+"/api/history", serveHistory(cfg, gm, errs))

	mux.GET(cfg.prefix+"/api/stats", serveStats(cfg, gm, errs))

	mux.GET(cfg.prefix+"/api/words", serveWords(cfg, gm, errs))
}
