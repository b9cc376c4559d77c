package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"hrms/models"
	"hrms/schema"
	"hrms/storage"
)

type CandidateHandler struct {
	store     *storage.Storage
	uploadDir string
}

func NewCandidateHandler(store *storage.Storage, uploadDir string) *CandidateHandler {
	return &CandidateHandler{
		store:     store,
		uploadDir: uploadDir,
	}
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.store.GetCandidates()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch candidates")
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Candidate not found")
		return
	}

	candidate, err := h.store.GetCandidate(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch candidate")
		return
	}
	if candidate == nil {
		writeError(w, http.StatusNotFound, "Candidate not found")
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.CandidateInsert

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid form data")
			return
		}
		in = schema.CandidateInsert{
			FullName:   r.FormValue("fullName"),
			Email:      r.FormValue("email"),
			Phone:      r.FormValue("phone"),
			Position:   r.FormValue("position"),
			Experience: r.FormValue("experience"),
			Status:     r.FormValue("status"),
		}
		url, err := saveUpload(r, "resume", h.uploadDir)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if url != "" {
			in.ResumeURL = &url
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	candidate, err := in.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate, err = h.store.CreateCandidate(candidate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, candidate)
}

func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var patch schema.CandidatePatch

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid form data")
			return
		}
		patch = schema.CandidatePatch{
			FullName:   formString(r, "fullName"),
			Email:      formString(r, "email"),
			Phone:      formString(r, "phone"),
			Position:   formString(r, "position"),
			Experience: formString(r, "experience"),
			Status:     formString(r, "status"),
		}
		url, err := saveUpload(r, "resume", h.uploadDir)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// No file on update leaves any existing resume untouched
		if url != "" {
			patch.ResumeURL = &url
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	changes, err := patch.Changes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate, err := h.store.UpdateCandidate(id, changes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete candidate")
		return
	}

	if err := h.store.DeleteCandidate(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete candidate")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Promote composes an employee record from the candidate's fields plus the
// supplied department, joining today.
func (h *CandidateHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Candidate not found")
		return
	}

	candidate, err := h.store.GetCandidate(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch candidate")
		return
	}
	if candidate == nil {
		writeError(w, http.StatusNotFound, "Candidate not found")
		return
	}

	var body struct {
		Department string `json:"department"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := schema.EmployeeInsert{
		FullName:      candidate.FullName,
		Email:         candidate.Email,
		Phone:         candidate.Phone,
		Position:      candidate.Position,
		Department:    body.Department,
		DateOfJoining: time.Now().Format(time.RFC3339),
		Status:        models.EmployeeStatusPresent,
	}

	employee, err := in.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err = h.store.PromoteCandidate(candidate.ID, employee)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}
