/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// WorDraw
//
// Players split into teams and take turns drawing a secret word while their
// teammates guess. One browser hosts the shared screen and drives the match;
// any other browser that opens the same game URL follows along.
//
// Routes:
// - $prefix/wordraw                 → redirect to a new random game
// - $prefix/wordraw/:gameid         → web client
// - $prefix/wordraw/:gameid/ws      → WebSocket for that game
// - $prefix/wordraw/:gameid/qr      → PNG QR code for the game URL
// - $prefix/wordraw/:gameid/state   → JSON snapshot, without the hidden word
//
// The first connection to a game becomes the host. Followers can claim a
// participant name; the claimed drawer sees the word on their own device and
// their teammates can type guesses.

package main

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/wordraw/games/wordraw"
	"github.com/Seednode/wordraw/history"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// ClientMessage is anything a browser sends us.
type ClientMessage struct {
	Type    string `json:"type"`
	Name    string `json:"name,omitempty"`    // add_participant, remove_participant, rename_team, claim
	Count   int    `json:"count,omitempty"`   // set_team_count
	Index   int    `json:"index,omitempty"`   // rename_team
	Correct *bool  `json:"correct,omitempty"` // guess
	Text    string `json:"text,omitempty"`    // guess_text
}

// SessionInfoMessage tells a client its role in the game.
type SessionInfoMessage struct {
	Type        string `json:"type"` // "session_info"
	GameID      string `json:"game_id"`
	IsHost      bool   `json:"is_host"`
	Participant string `json:"participant,omitempty"`
}

// StateMessage carries the game as this client is allowed to see it.
type StateMessage struct {
	Type string `json:"type"` // "state"
	wordraw.Snapshot
}

// ErrorMessage goes only to the client whose request failed.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

// GuessHintMessage answers a typed guess that missed.
type GuessHintMessage struct {
	Type     string `json:"type"` // "guess_hint"
	Close    bool   `json:"close"`
	Distance int    `json:"distance"`
	Message  string `json:"message"`
}

// NoticeMessage is broadcast to everyone.
type NoticeMessage struct {
	Type    string `json:"type"` // "notice"
	Message string `json:"message"`
}

var errMissingVerdict = errors.New("Say whether the word was guessed.")

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type command struct {
	client *Client
	msg    ClientMessage
}

// claimRelease is a pending release of a disconnected player's claim.
type claimRelease struct {
	timer clockwork.Timer
}

type Hub struct {
	id    string
	cfg   *Config
	clock clockwork.Clock
	store history.Store

	game  *wordraw.Game
	timer *wordraw.PhaseTimer

	clients  map[*Client]bool
	claims   map[string]string        // playerID -> participant name
	releases map[string]*claimRelease // playerID -> pending release

	register chan *Client
	unreg    chan *Client
	controls chan command
	plays    chan command
	expired  chan int
	done     chan struct{}
	closer   sync.Once

	mu sync.RWMutex

	createdAt    time.Time
	lastActive   time.Time
	hostPlayerID string // cookie/playerID of the host
	recorded     bool
}

func newHub(cfg *Config, gameID string, game *wordraw.Game, clock clockwork.Clock, store history.Store) *Hub {
	now := clock.Now()
	h := &Hub{
		id:         gameID,
		cfg:        cfg,
		clock:      clock,
		store:      store,
		game:       game,
		clients:    make(map[*Client]bool),
		claims:     make(map[string]string),
		releases:   make(map[string]*claimRelease),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		controls:   make(chan command),
		plays:      make(chan command),
		expired:    make(chan int, 1),
		done:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
	}

	h.timer = wordraw.NewPhaseTimer(clock, func(key int) {
		select {
		case h.expired <- key:
		case <-h.done:
		}
	})

	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.handleRegister(c)

		case c := <-h.unreg:
			h.handleUnregister(c)

		case cmd := <-h.controls:
			h.handleControl(cmd)

		case cmd := <-h.plays:
			h.handlePlay(cmd)

		case key := <-h.expired:
			h.handleExpiry(key)

		case <-h.done:
			h.timer.Stop()
			return
		}
	}
}

func (h *Hub) handleRegister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = h.clock.Now()

	// First connection becomes the host
	if h.hostPlayerID == "" {
		h.hostPlayerID = c.playerID
		logf(h.cfg, "GAMES: Host connected to %s", h.id)
	}

	h.clients[c] = true
	h.cancelReleaseLocked(c.playerID)

	h.sendLocked(c, h.sessionInfoLocked(c))
	h.sendLocked(c, h.stateForLocked(c, h.game.Snapshot()))
}

func (h *Hub) handleUnregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = h.clock.Now()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}

	if _, claimed := h.claims[c.playerID]; !claimed || h.cfg.playerTimeout <= 0 {
		return
	}
	for client := range h.clients {
		if client.playerID == c.playerID {
			return
		}
	}

	// The countdown restarts from the player's last disconnect.
	h.cancelReleaseLocked(c.playerID)

	playerID := c.playerID
	rel := &claimRelease{}
	rel.timer = h.clock.AfterFunc(h.cfg.playerTimeout, func() {
		h.releaseClaim(playerID, rel)
	})
	h.releases[playerID] = rel
}

func (h *Hub) cancelReleaseLocked(playerID string) {
	if rel, ok := h.releases[playerID]; ok {
		rel.timer.Stop()
		delete(h.releases, playerID)
	}
}

// releaseClaim frees a participant name if its player never came back.
// rel must still be the player's pending release.
func (h *Hub) releaseClaim(playerID string, rel *claimRelease) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.releases[playerID] != rel {
		return
	}
	delete(h.releases, playerID)

	for client := range h.clients {
		if client.playerID == playerID {
			return
		}
	}

	if name, ok := h.claims[playerID]; ok {
		delete(h.claims, playerID)
		logf(h.cfg, "GAMES: Released %q in %s", name, h.id)
	}
}

// handleControl processes host commands: team setup and phase control.
func (h *Hub) handleControl(cmd command) {
	c := cmd.client
	msg := cmd.msg

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = h.clock.Now()

	if h.hostPlayerID == "" || c.playerID != h.hostPlayerID {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Message: "Only the host can do that.",
		})
		return
	}

	var err error

	switch msg.Type {
	case "set_team_count":
		err = h.game.SetTeamCount(msg.Count)

	case "add_participant":
		err = h.game.AddParticipant(msg.Name)

	case "remove_participant":
		if err = h.game.RemoveParticipant(msg.Name); err == nil {
			h.dropClaimsLocked(msg.Name)
		}

	case "organize_teams":
		err = h.game.OrganizeTeams()

	case "rename_team":
		err = h.game.RenameTeam(msg.Index, msg.Name)

	case "start_round":
		if err = h.game.Start(); err == nil {
			logf(h.cfg, "GAMES: Match started in %s with %d participants", h.id, len(h.game.Participants()))
		}

	case "advance":
		err = h.game.Advance()

	case "reroll":
		err = h.game.Reroll()

	case "toggle_word":
		err = h.game.ToggleWord()

	case "guess":
		if msg.Correct == nil {
			err = errMissingVerdict
			break
		}
		err = h.game.Guess(*msg.Correct)

	case "restart":
		h.game.Restart()
		h.recorded = false
		logf(h.cfg, "GAMES: Match restarted in %s", h.id)

	default:
		return
	}

	if err != nil {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Message: err.Error(),
		})
		return
	}

	h.changedLocked()
}

// handlePlay processes requests any connected player may make.
func (h *Hub) handlePlay(cmd command) {
	c := cmd.client
	msg := cmd.msg

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = h.clock.Now()

	switch msg.Type {
	case "claim":
		h.claimLocked(c, msg.Name)

	case "guess_text":
		participant := h.claims[c.playerID]

		res, err := h.game.GuessText(participant, msg.Text)
		if err != nil {
			h.sendLocked(c, ErrorMessage{
				Type:    "error",
				Message: err.Error(),
			})
			return
		}

		if res.Correct {
			logf(h.cfg, "GAMES: %q guessed the word in %s", participant, h.id)
			h.broadcastLocked(NoticeMessage{
				Type:    "notice",
				Message: participant + " guessed the word!",
			})
			h.changedLocked()
			return
		}

		text := "Not quite."
		if res.Close {
			text = "So close!"
		}
		h.sendLocked(c, GuessHintMessage{
			Type:     "guess_hint",
			Close:    res.Close,
			Distance: res.Distance,
			Message:  text,
		})
	}
}

func (h *Hub) claimLocked(c *Client, requested string) {
	if requested == "" {
		delete(h.claims, c.playerID)
		h.sendLocked(c, h.sessionInfoLocked(c))
		h.sendLocked(c, h.stateForLocked(c, h.game.Snapshot()))
		return
	}

	name, ok := h.game.CanonicalName(requested)
	if !ok {
		h.sendLocked(c, ErrorMessage{
			Type:    "error",
			Message: wordraw.ErrUnknownParticipant.Error(),
		})
		return
	}

	for playerID, claimed := range h.claims {
		if claimed == name && playerID != c.playerID {
			h.sendLocked(c, ErrorMessage{
				Type:    "error",
				Message: "Someone else is already playing as " + name + ".",
			})
			return
		}
	}

	h.claims[c.playerID] = name
	logf(h.cfg, "GAMES: Player claimed %q in %s", name, h.id)

	for client := range h.clients {
		if client.playerID != c.playerID {
			continue
		}
		h.sendLocked(client, h.sessionInfoLocked(client))
		h.sendLocked(client, h.stateForLocked(client, h.game.Snapshot()))
	}
}

func (h *Hub) dropClaimsLocked(name string) {
	for playerID, claimed := range h.claims {
		if strings.EqualFold(claimed, name) {
			delete(h.claims, playerID)
		}
	}
}

func (h *Hub) handleExpiry(key int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.game.Expire(key) {
		return
	}

	h.changedLocked()
}

// changedLocked re-arms the phase timer, records a finished match and
// pushes the new state to every client.
func (h *Hub) changedLocked() {
	h.timer.Sync(h.game)

	if h.game.Stage() == wordraw.StageFinished && !h.recorded {
		h.recorded = true
		h.recordLocked()
	}

	h.broadcastStateLocked()
}

func (h *Hub) recordLocked() {
	snap := h.game.Snapshot()

	result := history.Result{
		GameID:     h.id,
		FinishedAt: h.clock.Now(),
		Winner:     snap.Winner,
		Teams:      make([]history.TeamResult, 0, len(snap.Teams)),
	}
	if snap.Outcome != nil {
		result.Draw = snap.Outcome.Draw
	}
	for _, t := range snap.Teams {
		result.Teams = append(result.Teams, history.TeamResult{
			Name:         t.Name,
			Participants: t.Participants,
			Score:        t.Score,
			Guessed:      t.Guessed,
		})
	}

	if result.Draw {
		logf(h.cfg, "GAMES: Match in %s ended in a draw", h.id)
	} else {
		logf(h.cfg, "GAMES: %q won the match in %s", result.Winner, h.id)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := h.store.Record(ctx, result); err != nil {
			errorf(h.cfg, "GAMES: Unable to record result for %s: %v", h.id, err)
		}
	}()
}

func (h *Hub) sessionInfoLocked(c *Client) SessionInfoMessage {
	return SessionInfoMessage{
		Type:        "session_info",
		GameID:      h.id,
		IsHost:      c.playerID == h.hostPlayerID,
		Participant: h.claims[c.playerID],
	}
}

func (h *Hub) stateForLocked(c *Client, snap wordraw.Snapshot) StateMessage {
	return StateMessage{
		Type:     "state",
		Snapshot: snap.Redacted(h.claims[c.playerID], c.playerID == h.hostPlayerID),
	}
}

func (h *Hub) broadcastStateLocked() {
	snap := h.game.Snapshot()

	for client := range h.clients {
		h.sendLocked(client, h.stateForLocked(client, snap))
	}
}

func (h *Hub) broadcastLocked(msg any) {
	for client := range h.clients {
		h.sendLocked(client, msg)
	}
}

// sendLocked drops clients that cannot keep up.
func (h *Hub) sendLocked(c *Client, msg any) {
	if !h.clients[c] {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

// publicState is the snapshot shown to anonymous observers.
func (h *Hub) publicState() wordraw.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.game.Snapshot().Redacted("", false)
}

// closeAll disconnects all clients of this hub (used by reaper).
func (h *Hub) closeAll() {
	h.closer.Do(func() {
		close(h.done)
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	for playerID := range h.releases {
		h.cancelReleaseLocked(playerID)
	}

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "wordraw_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated session.
type GameManager struct {
	cfg   *Config
	bank  *wordraw.Bank
	store history.Store
	clock clockwork.Clock

	mu   sync.Mutex
	hubs map[string]*Hub
	quit chan struct{}
	once sync.Once
}

func newGameManager(cfg *Config, bank *wordraw.Bank, store history.Store, clock clockwork.Clock) *GameManager {
	gm := &GameManager{
		cfg:   cfg,
		bank:  bank,
		store: store,
		clock: clock,
		hubs:  make(map[string]*Hub),
		quit:  make(chan struct{}),
	}
	if cfg.sessionTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(gameID string) (*Hub, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub, nil
	}

	game, err := wordraw.New(wordraw.Options{
		Bank:            gm.bank,
		Schedule:        gm.cfg.schedule(),
		Rounds:          gm.cfg.rounds,
		MaxParticipants: gm.cfg.maxParticipants,
		Clock:           gm.clock,
	})
	if err != nil {
		return nil, err
	}

	hub := newHub(gm.cfg, gameID, game, gm.clock, gm.store)
	gm.hubs[gameID] = hub
	go hub.run()
	return hub, nil
}

func (gm *GameManager) lookup(gameID string) (*Hub, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	hub, ok := gm.hubs[gameID]
	return hub, ok
}

func (gm *GameManager) count() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return len(gm.hubs)
}

const gameIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = gameIDLetters[int(buf[i])%len(gameIDLetters)]
		}
		id := string(out)

		if _, exists := gm.lookup(id); !exists {
			return id
		}
	}
}

func validGameID(id string) bool {
	if len(id) < 4 || len(id) > 32 {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(gameIDLetters, r) {
			return false
		}
	}
	return true
}

// reap removes hubs that have been idle longer than the session timeout.
func (gm *GameManager) reap() {
	cutoff := gm.clock.Now().Add(-gm.cfg.sessionTimeout)

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		hub.mu.RLock()
		last := hub.lastActive
		hub.mu.RUnlock()

		if last.Before(cutoff) {
			delete(gm.hubs, id)
			go hub.closeAll()
			logf(gm.cfg, "GAMES: Reaped idle game %s", id)
		}
	}
}

func (gm *GameManager) reaperLoop() {
	ticker := gm.clock.NewTicker(gm.cfg.sessionTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			gm.reap()
		case <-gm.quit:
			return
		}
	}
}

func (gm *GameManager) stop() {
	gm.once.Do(func() {
		close(gm.quit)
	})

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		delete(gm.hubs, id)
		hub.closeAll()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if !validGameID(gameID) {
			http.Error(w, "invalid game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)

		hub, err := gm.getHub(gameID)
		if err != nil {
			errorf(cfg, "GAMES: Unable to create game %s: %v", gameID, err)
			http.Error(w, "unable to create game", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			errorf(cfg, "GAMES: Upgrade error from %s: %v", realIP(r), err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 16),
			playerID: playerID,
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		var ch chan command
		switch msg.Type {
		case "set_team_count", "add_participant", "remove_participant", "organize_teams",
			"rename_team", "start_round", "advance", "reroll", "toggle_word", "guess", "restart":
			ch = h.controls
		case "claim", "guess_text":
			ch = h.plays
		default:
			// ignore unknown types
			continue
		}

		select {
		case ch <- command{client: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !validGameID(ps.ByName("gameid")) {
			http.Error(w, "invalid game id", http.StatusBadRequest)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := cfg.scheme()
		if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
			scheme = proto
		}

		// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
		path := strings.TrimSuffix(r.URL.Path, "/qr")

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(scheme+"://"+r.Host+path, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)
		_, _ = w.Write(png)
	}
}

func serveGamePage(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !validGameID(ps.ByName("gameid")) {
			http.NotFound(w, r)
			return
		}

		data, err := assets.ReadFile("assets/wordraw/index.html")
		if err != nil {
			errs <- err
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		if _, err := w.Write(data); err != nil {
			errs <- err
		}
	}
}

func serveGameState(cfg *Config, gm *GameManager, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		hub, ok := gm.lookup(ps.ByName("gameid"))
		if !ok {
			writeJSON(cfg, w, http.StatusNotFound, ErrorMessage{Type: "error", Message: "game not found"}, errs)
			return
		}

		writeJSON(cfg, w, http.StatusOK, hub.publicState(), errs)
	}
}

func writeJSON(cfg *Config, w http.ResponseWriter, status int, v any, errs chan<- error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	securityHeaders(cfg, w)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		errs <- fmt.Errorf("encode response: %w", err)
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s%s/%s for %s", cfg.prefix, path, gameID, realIP(r))
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

func registerWordrawGame(cfg *Config, path string, gm *GameManager, mux *httprouter.Router, errs chan<- error) {
	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	mux.GET(cfg.prefix+path+"/:gameid", serveGamePage(cfg, errs))

	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler(cfg))

	mux.GET(cfg.prefix+path+"/:gameid/state", serveGameState(cfg, gm, errs))
}
