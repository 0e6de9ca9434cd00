package server

import (
	"encoding/json"
	"net/http"

	"opsboard/internal/repository"
)

type channelRequest struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	SyncEnabled   bool            `json:"sync_enabled"`
	SyncFrequency int             `json:"sync_frequency"`
	Credentials   json.RawMessage `json:"credentials"`
}

func (s *Server) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var req channelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ch := &repository.Channel{
		Name:          req.Name,
		Type:          req.Type,
		Status:        req.Status,
		SyncEnabled:   req.SyncEnabled,
		SyncFrequency: req.SyncFrequency,
		Credentials:   req.Credentials,
	}

	if err := s.storage.CreateChannel(r.Context(), ch); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, ch)
}

func (s *Server) handleGetChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	ch, err := s.storage.GetChannel(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ch)
}

func (s *Server) handleUpdateChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	var req channelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ch := &repository.Channel{
		ID:            id,
		Name:          req.Name,
		Type:          req.Type,
		Status:        req.Status,
		SyncEnabled:   req.SyncEnabled,
		SyncFrequency: req.SyncFrequency,
		Credentials:   req.Credentials,
	}

	if err := s.storage.UpdateChannel(r.Context(), ch); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ch)
}

func (s *Server) handleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	if err := s.storage.DeleteChannel(r.Context(), id); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Channel deleted"})
}

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := s.storage.ListChannels(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, channels)
}

func (s *Server) handleSyncChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	ch, err := s.storage.SyncChannelNow(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ch)
}

func (s *Server) handleSetChannelSync(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid channel ID")
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.SetChannelSync(r.Context(), id, req.Enabled); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":           id,
		"sync_enabled": req.Enabled,
	})
}
