package impl

import (
	"context"
	"io"
	"log/slog"

	"rentora/internal/domain/repository"
)

// fakeTxManager runs the transactional function against the plain mock
// repositories, standing in for a real database transaction.
type fakeTxManager struct {
	notificationRepo repository.NotificationRepository
	organizationRepo repository.OrganizationRepository
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) NewNotificationRepository() repository.NotificationRepository {
	return f.notificationRepo
}

func (f *fakeTxManager) NewOrganizationRepository() repository.OrganizationRepository {
	return f.organizationRepo
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
