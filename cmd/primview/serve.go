// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"cogentcore.org/prim/base/errors"
	"cogentcore.org/prim/xyz"
	"github.com/gorilla/websocket"
)

// Update is the message sent to clients for each version of the scene.
// If the last reload failed, Error is set and Scene is the last good one.
type Update struct {
	Version  int           `json:"version"`
	Scene    *xyz.Document `json:"scene,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Server serves the current scene of a geometry file as JSON at /scene,
// and pushes each new version to websocket clients at /ws.
type Server struct {
	// Config is the config used to decode the file.
	Config *Config

	// File is the geometry file.
	File string

	upgrader websocket.Upgrader

	// mu guards the fields below, and all writes to client connections.
	mu      sync.Mutex
	update  Update
	data    []byte
	clients map[*websocket.Conn]bool
}

// NewServer returns a new [Server] for the given file.
func NewServer(cfg *Config, file string) *Server {
	return &Server{Config: cfg, File: file, clients: map[*websocket.Conn]bool{}}
}

// Reload decodes the file again and sends the result to all clients.
// A decoding error is returned, and also sent to clients along with
// the last good scene.
func (sv *Server) Reload() error {
	res, err := sv.Config.Open(sv.File)
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.update.Version++
	if err != nil {
		sv.update.Error = err.Error()
	} else {
		sv.update.Scene = res.Scene.Export()
		sv.update.Warnings = res.Warnings
		sv.update.Error = ""
	}
	data, jerr := json.Marshal(&sv.update)
	if jerr != nil {
		return jerr
	}
	sv.data = data
	for conn := range sv.clients {
		if werr := conn.WriteMessage(websocket.TextMessage, data); werr != nil {
			slog.Info("primview: dropping client", "addr", conn.RemoteAddr(), "err", werr)
			conn.Close()
			delete(sv.clients, conn)
		}
	}
	return err
}

// Snapshot returns the JSON encoding of the current [Update].
func (sv *Server) Snapshot() []byte {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.data
}

// Clients returns the number of connected websocket clients.
func (sv *Server) Clients() int {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return len(sv.clients)
}

// Handler returns the http handler for the server.
func (sv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /scene", sv.serveScene)
	mux.HandleFunc("GET /ws", sv.serveWS)
	return mux
}

func (sv *Server) serveScene(w http.ResponseWriter, r *http.Request) {
	data := sv.Snapshot()
	if data == nil {
		http.Error(w, "scene not loaded", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (sv *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := sv.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	sv.mu.Lock()
	if sv.data != nil {
		if err := conn.WriteMessage(websocket.TextMessage, sv.data); err != nil {
			sv.mu.Unlock()
			conn.Close()
			return
		}
	}
	sv.clients[conn] = true
	sv.mu.Unlock()

	// clients only listen; reading detects when they go away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	sv.mu.Lock()
	if sv.clients[conn] {
		delete(sv.clients, conn)
		conn.Close()
	}
	sv.mu.Unlock()
}
