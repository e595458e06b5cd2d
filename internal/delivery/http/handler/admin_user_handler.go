package handler

import (
	"encoding/json"
	"net/http"

	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/usecase"
	"carelink-backend/pkg/response"
	"carelink-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminUserHandler struct {
	adminUserUsecase usecase.AdminUserUsecase
	validator        *validator.CustomValidator
}

func NewAdminUserHandler(adminUserUsecase usecase.AdminUserUsecase, validator *validator.CustomValidator) *AdminUserHandler {
	return &AdminUserHandler{
		adminUserUsecase: adminUserUsecase,
		validator:        validator,
	}
}

func (h *AdminUserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.adminUserUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailExists:
			response.Conflict(w, "Email is already registered")
		default:
			response.InternalServerError(w, "Failed to create user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *AdminUserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminUserUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *AdminUserHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "User activated successfully")
}

func (h *AdminUserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "User deactivated successfully")
}

func (h *AdminUserHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := h.adminUserUsecase.SetUserActive(r.Context(), userID, active)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, message, user)
}
