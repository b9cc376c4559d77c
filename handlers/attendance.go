package handlers

import (
	"encoding/json"
	"net/http"

	"hrms/schema"
	"hrms/storage"
)

type AttendanceHandler struct {
	store *storage.Storage
}

func NewAttendanceHandler(store *storage.Storage) *AttendanceHandler {
	return &AttendanceHandler{store: store}
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.GetAttendance()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.AttendanceInsert
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := in.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err = h.store.CreateAttendance(record)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *AttendanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid attendance ID")
		return
	}

	var patch schema.AttendancePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	changes, err := patch.Changes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.store.UpdateAttendance(id, changes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, record)
}
