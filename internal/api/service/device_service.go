package service

import (
	"context"
	"ctchen222/three-in-a-row/internal/api/models"
	"ctchen222/three-in-a-row/internal/api/repository"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

//go:generate mockgen -source=device_service.go -destination=mocks/mock_device_service.go -package=mocks

// DeviceService defines the interface for device registration and stats.
type DeviceService interface {
	Register(ctx context.Context) (*models.Device, error)
	Stats(ctx context.Context, id string) (*models.Device, error)
}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	newID      func() string
}

// NewDeviceService creates a new DeviceService.
func NewDeviceService(deviceRepo repository.DeviceRepository) DeviceService {
	return &deviceService{
		deviceRepo: deviceRepo,
		newID:      uuid.NewString,
	}
}

// Register issues a new device id with empty tallies.
func (s *deviceService) Register(ctx context.Context) (*models.Device, error) {
	ctx, span := tracer.Start(ctx, "DeviceService.Register")
	defer span.End()

	device, err := s.deviceRepo.Create(ctx, s.newID())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to register device: %w", err)
	}
	slog.InfoContext(ctx, "Device registered", "device.id", device.ID)
	return device, nil
}

// Stats returns the device with its tallies.
func (s *deviceService) Stats(ctx context.Context, id string) (*models.Device, error) {
	ctx, span := tracer.Start(ctx, "DeviceService.Stats")
	defer span.End()

	return s.deviceRepo.FindByID(ctx, id)
}
