package repository

import (
	"context"
	"ctchen222/three-in-a-row/internal/api/apperror"
	"ctchen222/three-in-a-row/internal/api/models"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=device_repository.go -destination=mocks/mock_device_repository.go -package=mocks

var tracer = otel.Tracer("api.repository")

// DeviceRepository defines the interface for device data operations.
type DeviceRepository interface {
	Create(ctx context.Context, id string) (*models.Device, error)
	FindByID(ctx context.Context, id string) (*models.Device, error)
	// RecordResult credits a win to winnerID and a loss to loserID in one
	// transaction.
	RecordResult(ctx context.Context, winnerID, loserID string) error
}

type sqliteDeviceRepository struct {
	db *sqlx.DB
}

// NewDeviceRepository creates a new SQLite-based DeviceRepository.
func NewDeviceRepository(db *sqlx.DB) DeviceRepository {
	return &sqliteDeviceRepository{db: db}
}

// Create inserts a device with empty tallies.
func (r *sqliteDeviceRepository) Create(ctx context.Context, id string) (*models.Device, error) {
	ctx, span := tracer.Start(ctx, "DeviceRepository.Create")
	defer span.End()
	span.SetAttributes(attribute.String("device.id", id))

	query := `INSERT INTO devices (id) VALUES (?)`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("failed to create device: %w", err)
	}
	return r.FindByID(ctx, id)
}

// FindByID retrieves a device by id.
func (r *sqliteDeviceRepository) FindByID(ctx context.Context, id string) (*models.Device, error) {
	ctx, span := tracer.Start(ctx, "DeviceRepository.FindByID")
	defer span.End()
	span.SetAttributes(attribute.String("device.id", id))

	var device models.Device
	query := `SELECT id, wins, losses, created_at FROM devices WHERE id = ?`
	if err := r.db.GetContext(ctx, &device, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrDeviceNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, fmt.Errorf("failed to get device by id: %w", err)
	}
	return &device, nil
}

func (r *sqliteDeviceRepository) RecordResult(ctx context.Context, winnerID, loserID string) error {
	ctx, span := tracer.Start(ctx, "DeviceRepository.RecordResult")
	defer span.End()
	span.SetAttributes(attribute.String("device.winner", winnerID), attribute.String("device.loser", loserID))

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := bump(ctx, tx, `UPDATE devices SET wins = wins + 1 WHERE id = ?`, winnerID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "winner update failed")
		return err
	}
	if err := bump(ctx, tx, `UPDATE devices SET losses = losses + 1 WHERE id = ?`, loserID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "loser update failed")
		return err
	}

	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to commit result: %w", err)
	}
	return nil
}

func bump(ctx context.Context, tx *sqlx.Tx, query, id string) error {
	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to update device %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update device %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrDeviceNotFound, id)
	}
	return nil
}
