package services

import (
	"context"
	"path"
	"strings"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const uploadURLExpiry = 15 * time.Minute

// UploadService implements the two-phase file flow: the client asks for an
// upload slot, pushes bytes straight to the blob store via the capability
// URL, then attaches the finished upload (plus its content hash) to a CV.
// There is no partial-upload recovery; a stale reference shows up as a
// missing-file condition at read time.
type UploadService interface {
	CreateUpload(ctx context.Context, req *dto.CreateUploadRequest) (*dto.CreateUploadResponse, error)
	AttachToCV(ctx context.Context, actor *dto.Identity, cvID string, req *dto.AttachFileRequest) (*models.CV, error)
	CVFileURL(ctx context.Context, cvID string) (string, error)
}

type UploadServiceImpl struct {
	uploadRepo   repositories.UploadStore
	cvRepo       repositories.CVStore
	fileHashRepo repositories.FileHashStore
	store        storage.Storage
}

func NewUploadService(
	uploadRepo repositories.UploadStore,
	cvRepo repositories.CVStore,
	fileHashRepo repositories.FileHashStore,
	store storage.Storage,
) UploadService {
	return &UploadServiceImpl{
		uploadRepo:   uploadRepo,
		cvRepo:       cvRepo,
		fileHashRepo: fileHashRepo,
		store:        store,
	}
}

func (s *UploadServiceImpl) CreateUpload(ctx context.Context, req *dto.CreateUploadRequest) (*dto.CreateUploadResponse, error) {
	ext := path.Ext(req.FileName)
	key := "cv/" + uuid.NewString() + ext

	upload := &models.Upload{
		Key:         key,
		FileName:    req.FileName,
		ContentType: req.ContentType,
	}
	if err := s.uploadRepo.Create(upload); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.SignedPutURL(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateUploadResponse{UploadID: upload.ID, UploadURL: url}, nil
}

// AttachToCV records the upload reference on the CV. An identical file
// (same sha256) already bound to a different CV is rejected, never silently
// rebound.
func (s *UploadServiceImpl) AttachToCV(ctx context.Context, actor *dto.Identity, cvID string, req *dto.AttachFileRequest) (*models.CV, error) {
	cv, err := s.cvRepo.FindByID(cvID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCVNotFound) {
			return nil, apperrors.ErrNotFound(err, "cv")
		}
		return nil, apperrors.InternalError(err)
	}
	if err := requireAdminOrOwner(actor, cv.Email); err != nil {
		return nil, err
	}

	upload, err := s.uploadRepo.FindByID(req.UploadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return nil, apperrors.ErrNotFound(err, "upload")
		}
		return nil, apperrors.InternalError(err)
	}

	hash := strings.ToLower(req.SHA256)
	existing, err := s.fileHashRepo.Find(hash)
	if err == nil {
		if existing.CVID != cv.ID {
			return nil, apperrors.ErrDuplicateFile
		}
		// Same file re-attached to the same CV: accept as-is.
	} else if !apperrors.Is(err, repositories.ErrFileHashNotFound) {
		return nil, apperrors.InternalError(err)
	} else {
		if err := s.fileHashRepo.Create(&models.FileHash{
			Hash:     hash,
			CVID:     cv.ID,
			UploadID: upload.ID,
		}); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	upload.Attached = true
	if err := s.uploadRepo.Update(upload); err != nil {
		return nil, apperrors.InternalError(err)
	}

	cv.FileID = upload.ID
	if err := s.cvRepo.Update(cv); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("file attached to cv", "cv_id", cv.ID, "upload_id", upload.ID)
	return cv, nil
}

// CVFileURL resolves the CV's file reference to a download URL. Dangling
// references surface here as a missing-file condition.
func (s *UploadServiceImpl) CVFileURL(ctx context.Context, cvID string) (string, error) {
	cv, err := s.cvRepo.FindByID(cvID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCVNotFound) {
			return "", apperrors.ErrNotFound(err, "cv")
		}
		return "", apperrors.InternalError(err)
	}
	if cv.FileID == "" {
		return "", apperrors.ErrFileMissing
	}

	upload, err := s.uploadRepo.FindByID(cv.FileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return "", apperrors.ErrFileMissing
		}
		return "", apperrors.InternalError(err)
	}

	exists, err := s.store.Exists(ctx, upload.Key)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if !exists {
		return "", apperrors.ErrFileMissing
	}

	url, err := s.store.SignedGetURL(ctx, upload.Key, uploadURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
