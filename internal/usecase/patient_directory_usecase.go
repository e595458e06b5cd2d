package usecase

import (
	"context"

	"carelink-backend/internal/aggregate"
	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/domain/entity"
	"carelink-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientDirectoryUsecase interface {
	GetAllPatients(ctx context.Context, filter entity.PatientFilter) (*dto.PatientListResponse, error)
}

type patientDirectoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	directoryRepo repository.PatientDirectoryRepository
}

func NewPatientDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	directoryRepo repository.PatientDirectoryRepository,
) PatientDirectoryUsecase {
	return &patientDirectoryUsecase{
		db:            db,
		log:           log,
		directoryRepo: directoryRepo,
	}
}

// GetAllPatients lists patient profiles with their documents, conditions
// and allergies stitched in. With no filters every patient is returned,
// newest first.
func (u *patientDirectoryUsecase) GetAllPatients(ctx context.Context, filter entity.PatientFilter) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	mainRows, err := u.directoryRepo.FindPatientRows(db, filter)
	if err != nil {
		u.log.Warnf("Failed to query patients: %+v", err)
		return nil, err
	}

	set, err := aggregate.BuildPatientSet(mainRows)
	if err != nil {
		u.log.Warnf("Failed to build patient set: %+v", err)
		return nil, err
	}

	ids := set.IDs()

	docRows, err := u.directoryRepo.FindDocumentRows(db, ids)
	if err != nil {
		u.log.Warnf("Failed to query patient documents: %+v", err)
		return nil, err
	}
	if err := set.StitchDocuments(docRows); err != nil {
		return nil, err
	}

	condRows, err := u.directoryRepo.FindConditionRows(db, ids)
	if err != nil {
		u.log.Warnf("Failed to query patient conditions: %+v", err)
		return nil, err
	}
	if err := set.StitchConditions(condRows); err != nil {
		return nil, err
	}

	allergyRows, err := u.directoryRepo.FindAllergyRows(db, ids)
	if err != nil {
		u.log.Warnf("Failed to query patient allergies: %+v", err)
		return nil, err
	}
	if err := set.StitchAllergies(allergyRows); err != nil {
		return nil, err
	}

	patients := set.Patients()
	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}
