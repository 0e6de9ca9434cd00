package server

import (
	"encoding/json"
	"net/http"

	"opsboard/internal/repository"
)

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var c repository.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c.ID = 0

	if err := s.storage.CreateCustomer(r.Context(), &c); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	c, err := s.storage.GetCustomer(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var c repository.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c.ID = id

	if err := s.storage.UpdateCustomer(r.Context(), &c); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if err := s.storage.DeleteCustomer(r.Context(), id); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted"})
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.storage.ListCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

func (s *Server) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	var sup repository.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sup.ID = 0

	if err := s.storage.CreateSupplier(r.Context(), &sup); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, sup)
}

func (s *Server) handleGetSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	sup, err := s.storage.GetSupplier(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sup)
}

func (s *Server) handleUpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	var sup repository.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sup.ID = id

	if err := s.storage.UpdateSupplier(r.Context(), &sup); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sup)
}

func (s *Server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	if err := s.storage.DeleteSupplier(r.Context(), id); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Supplier deleted"})
}

func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.storage.ListSuppliers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, suppliers)
}
