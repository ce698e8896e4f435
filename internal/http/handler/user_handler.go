package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/go-service-template/internal/domain"
	"github.com/sandeepkv93/go-service-template/internal/http/response"
	"github.com/sandeepkv93/go-service-template/internal/observability"
	"github.com/sandeepkv93/go-service-template/internal/repository"
	"github.com/sandeepkv93/go-service-template/internal/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		FullName string `json:"full_name"`
		IsActive *bool  `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}

	created, err := h.svc.Create(r.Context(), service.CreateUserInput{
		Email:    body.Email,
		Username: body.Username,
		FullName: body.FullName,
		IsActive: body.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists),
			errors.Is(err, service.ErrUserInvalidEmail),
			errors.Is(err, service.ErrUserInvalidUsername):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create user", nil)
			return
		}
	}

	observability.Audit(r, "user.create", "user_id", strconv.FormatUint(uint64(created.ID), 10))
	response.JSON(w, r, http.StatusCreated, created)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid user id", nil)
		return
	}

	user, err := h.svc.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load user", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, err := parseQueryInt(r, "skip", 0)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	limit, err := parseQueryInt(r, "limit", service.DefaultListLimit)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}

	users, err := h.svc.List(r.Context(), skip, limit)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list users", nil)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	response.JSON(w, r, http.StatusOK, users)
}
