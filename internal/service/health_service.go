package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/student-control/internal/dto"
	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

type systemRepository interface {
	Ping(ctx context.Context) error
	ListTables(ctx context.Context) ([]models.TableInfo, error)
}

// HealthService reports store reachability and schema contents.
type HealthService struct {
	repo    systemRepository
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewHealthService constructs the health service. Each check is bounded by timeout.
func NewHealthService(repo systemRepository, timeout time.Duration, logger *zap.Logger) *HealthService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{repo: repo, timeout: timeout, logger: logger, now: time.Now}
}

// Check performs a round trip against the store.
func (s *HealthService) Check(ctx context.Context) dto.HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Warn("store health check failed", zap.Error(err))
		return dto.HealthResponse{
			Status:   dto.HealthStatusError,
			Database: dto.DatabaseDisconnected,
			Error:    appErrors.Cause(err).Error(),
		}
	}
	now := s.now().UTC()
	return dto.HealthResponse{
		Status:    dto.HealthStatusOK,
		Database:  dto.DatabaseConnected,
		Message:   "system operating normally",
		Timestamp: &now,
	}
}

// Tables lists the tables present in the store.
func (s *HealthService) Tables(ctx context.Context) ([]models.TableInfo, error) {
	tables, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tables")
	}
	return tables, nil
}
