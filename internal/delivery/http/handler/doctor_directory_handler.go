package handler

import (
	"net/http"

	"carelink-backend/internal/usecase"
	"carelink-backend/pkg/response"
)

type DoctorDirectoryHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorDirectoryHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorDirectoryHandler {
	return &DoctorDirectoryHandler{
		directoryUsecase: directoryUsecase,
	}
}

// GetVerifiedDetails returns every verified, active doctor with the full
// nested practice/clinic/hospital/schedule/qualification/document payload.
func (h *DoctorDirectoryHandler) GetVerifiedDetails(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.directoryUsecase.GetVerifiedDoctorDetails(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get verified doctor details")
		return
	}

	response.Success(w, http.StatusOK, "Verified doctor details retrieved successfully", doctors)
}
