package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createTaskRequest struct {
	Text string `json:"text"`
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// signup handles POST /signup
func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := parseJSONBody(w, r, &req); err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, "Invalid JSON.")
		return
	}

	token, err := s.users.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			s.errorResponse(w, r, http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, common.ErrDuplicateUsername):
			s.errorResponse(w, r, http.StatusConflict, "Username already exists.")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	s.logger.Info(r.Context(), "user signed up", "username", req.Username)
	s.jsonResponse(w, r, http.StatusCreated, tokenResponse{Token: token})
}

// login handles POST /login
func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := parseJSONBody(w, r, &req); err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, "Invalid JSON.")
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			s.errorResponse(w, r, http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, common.ErrorNotFound):
			s.errorResponse(w, r, http.StatusBadRequest, "User not found.")
		case errors.Is(err, common.ErrInvalidCredentials):
			s.errorResponse(w, r, http.StatusBadRequest, "Invalid password.")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	s.jsonResponse(w, r, http.StatusOK, tokenResponse{Token: token})
}

// listTasks handles GET /tasks
func (s *HTTPServer) listTasks(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	tasks, err := s.tasks.List(r.Context(), id.UserID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, tasks)
}

// createTask handles POST /tasks
func (s *HTTPServer) createTask(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	var req createTaskRequest
	if err := parseJSONBody(w, r, &req); err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, "Invalid JSON.")
		return
	}

	task, err := s.tasks.Create(r.Context(), id.UserID, req.Text)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			s.errorResponse(w, r, http.StatusBadRequest, "Task text is required.")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.jsonResponse(w, r, http.StatusCreated, task)
}

// updateTask handles PUT /tasks/{id}
func (s *HTTPServer) updateTask(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	var req models.TaskUpdate
	if err := parseJSONBody(w, r, &req); err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, "Invalid JSON.")
		return
	}

	task, err := s.tasks.Update(r.Context(), id.UserID, r.PathValue("id"), req)
	if err != nil {
		s.taskError(w, r, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, task)
}

// deleteTask handles DELETE /tasks/{id}
func (s *HTTPServer) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	if err := s.tasks.Delete(r.Context(), id.UserID, r.PathValue("id")); err != nil {
		s.taskError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) taskError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		s.errorResponse(w, r, http.StatusBadRequest, "Task text is required.")
	case errors.Is(err, common.ErrorNotFound):
		s.errorResponse(w, r, http.StatusNotFound, "Task not found.")
	default:
		s.internalError(w, r, err)
	}
}
