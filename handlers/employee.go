package handlers

import (
	"encoding/json"
	"net/http"

	"hrms/schema"
	"hrms/storage"
)

type EmployeeHandler struct {
	store *storage.Storage
}

func NewEmployeeHandler(store *storage.Storage) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.store.GetEmployees()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}

	employee, err := h.store.GetEmployee(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch employee")
		return
	}
	if employee == nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.EmployeeInsert
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	employee, err := in.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err = h.store.CreateEmployee(employee)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var patch schema.EmployeePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	changes, err := patch.Changes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := h.store.UpdateEmployee(id, changes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	if err := h.store.DeleteEmployee(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}

	records, err := h.store.GetAttendanceByEmployee(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *EmployeeHandler) Leaves(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}

	leaves, err := h.store.GetLeavesByEmployee(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leaves")
		return
	}
	writeJSON(w, http.StatusOK, leaves)
}
