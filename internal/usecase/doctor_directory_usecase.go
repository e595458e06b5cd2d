package usecase

import (
	"context"

	"carelink-backend/internal/aggregate"
	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorDirectoryUsecase interface {
	GetVerifiedDoctorDetails(ctx context.Context) (*dto.VerifiedDoctorListResponse, error)
}

type doctorDirectoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	directoryRepo repository.DoctorDirectoryRepository
}

func NewDoctorDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	directoryRepo repository.DoctorDirectoryRepository,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		db:            db,
		log:           log,
		directoryRepo: directoryRepo,
	}
}

// GetVerifiedDoctorDetails assembles the verified doctors' nested profiles.
// The main join runs first; its id set scopes the secondary queries, whose
// rows are stitched into the same accumulator. Any query failure aborts the
// whole operation; partial aggregation is never returned.
func (u *doctorDirectoryUsecase) GetVerifiedDoctorDetails(ctx context.Context) (*dto.VerifiedDoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	mainRows, err := u.directoryRepo.FindVerifiedDetailRows(db)
	if err != nil {
		u.log.Warnf("Failed to query verified doctor details: %+v", err)
		return nil, err
	}

	set, err := aggregate.BuildDoctorSet(mainRows, u.log)
	if err != nil {
		u.log.Warnf("Failed to build doctor set: %+v", err)
		return nil, err
	}

	ids := set.IDs()

	qualRows, err := u.directoryRepo.FindQualificationRows(db, ids)
	if err != nil {
		u.log.Warnf("Failed to query doctor qualifications: %+v", err)
		return nil, err
	}
	if err := set.StitchQualifications(qualRows); err != nil {
		return nil, err
	}

	docRows, err := u.directoryRepo.FindDocumentRows(db, ids)
	if err != nil {
		u.log.Warnf("Failed to query doctor documents: %+v", err)
		return nil, err
	}
	if err := set.StitchDocuments(docRows); err != nil {
		return nil, err
	}

	doctors := set.Doctors()
	return &dto.VerifiedDoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}
