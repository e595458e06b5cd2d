package handler

import (
	"net/http"

	"carelink-backend/internal/domain/entity"
	"carelink-backend/internal/usecase"
	"carelink-backend/pkg/response"
)

type PatientDirectoryHandler struct {
	directoryUsecase usecase.PatientDirectoryUsecase
}

func NewPatientDirectoryHandler(directoryUsecase usecase.PatientDirectoryUsecase) *PatientDirectoryHandler {
	return &PatientDirectoryHandler{
		directoryUsecase: directoryUsecase,
	}
}

// GetAllPatients lists patient profiles with optional full_name, email and
// gender query filters. Name and email match as substrings, gender exactly.
func (h *PatientDirectoryHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.PatientFilter{
		FullName: query.Get("full_name"),
		Email:    query.Get("email"),
		Gender:   query.Get("gender"),
	}

	patients, err := h.directoryUsecase.GetAllPatients(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
