package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=pass.go -destination=mocks/pass_mock.go -package=mocks

// PassService определяет контракт временных пропусков посетителей.
// Пропуска лежат в общем хранилище, поэтому въезд и выезд видят одно состояние.
type PassService interface {
	Issue(ctx context.Context, input models.PassInput) (*models.IssuedPass, error)
	RecordExit(ctx context.Context, id uuid.UUID) (*models.IssuedPass, error)
	ActiveForPlate(ctx context.Context, plate string) *models.IssuedPass
	List(ctx context.Context, status models.PassStatus) []models.IssuedPass
}

type passService struct {
	store    RecordStore[models.IssuedPass]
	logger   *logrus.Logger
	validate *validator.Validate
	now      Clock
}

func NewPassService(store RecordStore[models.IssuedPass], logger *logrus.Logger) PassService {
	return &passService{
		store:    store,
		logger:   logger,
		validate: newValidator(),
		now:      systemClock,
	}
}

// Issue выдает пропуск; на номер не может быть двух активных пропусков
func (s *passService) Issue(ctx context.Context, input models.PassInput) (*models.IssuedPass, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.LicensePlate = strings.TrimSpace(input.LicensePlate)
	input.Purpose = strings.TrimSpace(input.Purpose)
	log := s.logger.WithFields(logrus.Fields{
		"service": "pass",
		"method":  "Issue",
		"plate":   input.LicensePlate,
	})

	if err := validateInput(s.validate, input); err != nil {
		log.WithError(err).Warn("Pass request rejected")
		return nil, err
	}

	pass := models.IssuedPass{
		ID:           uuid.New(),
		FullName:     input.FullName,
		LicensePlate: input.LicensePlate,
		Purpose:      input.Purpose,
		IssuedBy:     input.IssuedBy,
		TimeIn:       s.now(),
		Status:       models.PassActive,
	}
	plate := models.NormalizePlate(input.LicensePlate)

	err := s.store.Mutate(ctx, func(records []models.IssuedPass) ([]models.IssuedPass, error) {
		for _, p := range records {
			if p.Status == models.PassActive && models.NormalizePlate(p.LicensePlate) == plate {
				return nil, &models.InvalidStateError{
					Entity: "pass",
					ID:     p.ID,
					From:   string(p.Status),
					Action: "issue another",
				}
			}
		}
		return append(records, pass), nil
	})
	if err != nil {
		var stateErr *models.InvalidStateError
		if errors.As(err, &stateErr) {
			log.WithError(err).Warn("Plate already has an active pass")
			return nil, err
		}
		log.WithError(err).Error("Failed to store pass")
		return nil, fmt.Errorf("service: could not issue pass: %w", err)
	}

	log.WithField("pass_id", pass.ID).Info("Pass issued")
	return &pass, nil
}

// RecordExit закрывает пропуск на выезде; повторный выезд - InvalidStateError
func (s *passService) RecordExit(ctx context.Context, id uuid.UUID) (*models.IssuedPass, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "pass",
		"method":  "RecordExit",
		"pass_id": id,
	})
	exitAt := s.now()

	var updated models.IssuedPass
	found, err := s.store.UpdateByID(ctx, id, func(p models.IssuedPass) (models.IssuedPass, error) {
		if p.Status != models.PassActive {
			return p, &models.InvalidStateError{Entity: "pass", ID: id, From: string(p.Status), Action: "exit"}
		}
		p.Status = models.PassExited
		p.TimeOut = &exitAt
		updated = p
		return p, nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to record exit")
		return nil, err
	}
	if !found {
		return nil, &models.NotFoundError{Entity: "pass", ID: id}
	}

	log.Info("Pass exit recorded")
	return &updated, nil
}

func (s *passService) ActiveForPlate(ctx context.Context, plate string) *models.IssuedPass {
	plate = models.NormalizePlate(plate)
	active := s.store.Query(ctx, func(p models.IssuedPass) bool {
		return p.Status == models.PassActive && models.NormalizePlate(p.LicensePlate) == plate
	})
	if len(active) == 0 {
		return nil
	}
	return &active[0]
}

// List возвращает пропуска с указанным статусом; пустой статус - все
func (s *passService) List(ctx context.Context, status models.PassStatus) []models.IssuedPass {
	return s.store.Query(ctx, func(p models.IssuedPass) bool {
		return status == "" || p.Status == status
	})
}
