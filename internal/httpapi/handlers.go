package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/gofrs/uuid/v5"

	"github.com/avolodin/notekeep/internal/errs"
	"github.com/avolodin/notekeep/internal/model"
	"github.com/avolodin/notekeep/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth  service.AuthService
	notes service.NoteService
}

// New constructs the handler set with injected services.
func New(auth service.AuthService, notes service.NoteService) *Server {
	return &Server{auth: auth, notes: notes}
}

// --- Notes ---

type createNoteRequest struct {
	Heading  string `json:"heading"`
	Content  string `json:"content"`
	Favorite bool   `json:"favorite"`
}

// CreateNote handles POST /create/notes.
func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Error creating note")
		return
	}
	n, err := s.notes.Create(r.Context(), req.Heading, req.Content, req.Favorite)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error creating note")
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// ListNotes handles GET /create/notes.
func (s *Server) ListNotes(w http.ResponseWriter, r *http.Request) {
	ns, err := s.notes.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error fetching notes")
		return
	}
	writeJSON(w, http.StatusOK, ns)
}

// GetNote handles GET /create/notes/{id}.
func (s *Server) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error fetching note")
		return
	}
	n, err := s.notes.GetOne(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Error fetching note")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// UpdateNote handles PUT /create/notes/{id}. Absent body fields keep
// their stored values.
func (s *Server) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error updating note")
		return
	}
	var upd model.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Error updating note")
		return
	}
	n, err := s.notes.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Error updating note")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// DeleteNote handles DELETE /create/notes/{id}.
func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error deleting note")
		return
	}
	if err := s.notes.Delete(r.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Error deleting note")
		return
	}
	writeMessage(w, http.StatusOK, "Note deleted successfully")
}

// --- Admin ---

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
}

type usersResponse struct {
	Users []model.User `json:"users"`
}

// Register handles POST /admin/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Error during registration")
		return
	}
	u, err := s.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyExists):
			writeMessage(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, errs.ErrValidation):
			writeMessage(w, http.StatusBadRequest, "Email and password are required")
		default:
			writeMessage(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, registerResponse{Message: "User registered successfully", User: u})
}

// Login handles POST /admin/login. Unknown email and wrong password map
// to the same response.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}
	tok, u, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			writeMessage(w, http.StatusBadRequest, "Invalid Credentials")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   tok.AccessToken,
		UserID:  u.ID.String(),
		Email:   u.Email,
	})
}

// GetUsers handles GET /admin/get-users.
func (s *Server) GetUsers(w http.ResponseWriter, r *http.Request) {
	us, err := s.auth.ListUsers(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if len(us) == 0 {
		writeMessage(w, http.StatusNotFound, "No users found")
		return
	}
	writeJSON(w, http.StatusOK, usersResponse{Users: us})
}

// DeleteUser handles DELETE /admin/delete-user/{id}.
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if err := s.auth.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrValidation) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}
