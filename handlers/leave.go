package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hrms/schema"
	"hrms/storage"
)

type LeaveHandler struct {
	store     *storage.Storage
	uploadDir string
}

func NewLeaveHandler(store *storage.Storage, uploadDir string) *LeaveHandler {
	return &LeaveHandler{
		store:     store,
		uploadDir: uploadDir,
	}
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.store.GetLeaves()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leaves")
		return
	}
	writeJSON(w, http.StatusOK, leaves)
}

func (h *LeaveHandler) Approved(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.store.GetApprovedLeaves()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch approved leaves")
		return
	}
	writeJSON(w, http.StatusOK, leaves)
}

func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.LeaveInsert

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid form data")
			return
		}
		employeeID, _ := strconv.ParseUint(r.FormValue("employeeId"), 10, 32)
		in = schema.LeaveInsert{
			EmployeeID: uint(employeeID),
			StartDate:  r.FormValue("startDate"),
			EndDate:    r.FormValue("endDate"),
			Reason:     r.FormValue("reason"),
			Status:     r.FormValue("status"),
		}
		if v := r.FormValue("designation"); v != "" {
			in.Designation = &v
		}
		url, err := saveUpload(r, "documents", h.uploadDir)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if url != "" {
			in.DocumentsURL = &url
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	leave, err := in.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	leave, err = h.store.CreateLeave(leave)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, leave)
}

func (h *LeaveHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave ID")
		return
	}

	var patch schema.LeavePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	changes, err := patch.Changes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	leave, err := h.store.UpdateLeave(id, changes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, leave)
}

func (h *LeaveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete leave")
		return
	}

	if err := h.store.DeleteLeave(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete leave")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
