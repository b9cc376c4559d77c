package handlers

import (
	"encoding/json"
	"net/http"

	"hrms/middleware"
	"hrms/models"
	"hrms/schema"
	"hrms/storage"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	store *storage.Storage
	auth  *middleware.Auth
}

func NewAuthHandler(store *storage.Storage, auth *middleware.Auth) *AuthHandler {
	return &AuthHandler{
		store: store,
		auth:  auth,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in schema.UserInsert
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := in.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.store.GetUserByUsername(user.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Username already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.Password = string(hashed)

	user, err = h.store.CreateUser(user)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.setTokenCookie(w, user); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.store.GetUserByUsername(creds.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.setTokenCookie(w, user); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, user *models.User) error {
	token, err := h.auth.GenerateToken(user)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.auth.Expiration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}
