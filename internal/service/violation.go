package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/shenikar/vehicle_gatepass/internal/config"
	"github.com/shenikar/vehicle_gatepass/internal/metrics"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=violation.go -destination=mocks/violation_mock.go -package=mocks

// События жизненного цикла нарушения
const (
	EventInvestigate = "investigate"
	EventResolve     = "resolve"
	EventEscalate    = "escalate"
)

// ViolationService определяет контракт жизненного цикла нарушений и производных запросов
type ViolationService interface {
	Report(ctx context.Context, input models.ViolationInput) (*models.Violation, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Violation, error)
	List(ctx context.Context, filter models.ViolationFilter) ([]models.Violation, int)
	StartInvestigation(ctx context.Context, id uuid.UUID) (*models.Violation, error)
	Resolve(ctx context.Context, id uuid.UUID, input models.ResolveInput) (*models.Violation, error)
	Escalate(ctx context.Context, id uuid.UUID, escalatedBy, notes string) (*models.Violation, error)
	ApplyPenalty(ctx context.Context, id uuid.UUID, input models.PenaltyInput) (*models.Violation, error)
	ViolationsByPlate(ctx context.Context, plate string) []models.Violation
	HasActiveViolations(ctx context.Context, plate string) bool
	SuspendedVehicles(ctx context.Context) []string
	VehiclePenalty(ctx context.Context, plate string) models.VehiclePenalty
	Summary(ctx context.Context) models.ViolationSummary
}

type violationService struct {
	store         RecordStore[models.Violation]
	logger        *logrus.Logger
	validate      *validator.Validate
	threshold     int
	requireReview bool
	now           Clock
}

func NewViolationService(store RecordStore[models.Violation], logger *logrus.Logger, cfg *config.Config) ViolationService {
	threshold := cfg.SuspensionThreshold
	if threshold < 1 {
		threshold = config.DefaultSuspensionThreshold
	}
	return &violationService{
		store:         store,
		logger:        logger,
		validate:      newValidator(),
		threshold:     threshold,
		requireReview: cfg.RequireReviewBeforePenalty,
		now:           systemClock,
	}
}

// newLifecycle строит автомат, стоящий в текущем статусе нарушения.
// resolved и escalated - терминальные состояния.
func newLifecycle(status models.ViolationStatus) *fsm.FSM {
	pending := string(models.StatusPending)
	investigating := string(models.StatusInvestigating)
	return fsm.NewFSM(
		string(status),
		fsm.Events{
			{Name: EventInvestigate, Src: []string{pending}, Dst: investigating},
			{Name: EventResolve, Src: []string{pending, investigating}, Dst: string(models.StatusResolved)},
			{Name: EventEscalate, Src: []string{pending, investigating}, Dst: string(models.StatusEscalated)},
		},
		fsm.Callbacks{},
	)
}

func normalizeViolationInput(in models.ViolationInput) models.ViolationInput {
	in.PlateNumber = strings.TrimSpace(in.PlateNumber)
	in.OwnerName = strings.TrimSpace(in.OwnerName)
	in.ViolationType = strings.TrimSpace(in.ViolationType)
	in.Description = strings.TrimSpace(in.Description)
	in.ReportedBy = strings.TrimSpace(in.ReportedBy)
	in.Location = strings.TrimSpace(in.Location)
	if in.Severity == "" {
		in.Severity = models.SeverityMedium
	}
	if in.OwnerType == "" {
		in.OwnerType = models.OwnerOthers
	}
	return in
}

// Report регистрирует нарушение по рапорту охранника.
// Уведомление здесь не создается, вызывающий отправляет его сам.
func (s *violationService) Report(ctx context.Context, input models.ViolationInput) (*models.Violation, error) {
	input = normalizeViolationInput(input)
	log := s.logger.WithFields(logrus.Fields{
		"service": "violation",
		"method":  "Report",
		"plate":   input.PlateNumber,
	})

	if err := validateInput(s.validate, input); err != nil {
		log.WithError(err).Warn("Violation report rejected")
		return nil, err
	}

	evidence := input.Evidence
	if evidence == nil {
		evidence = []string{}
	}
	violation := models.Violation{
		ID:            uuid.New(),
		PlateNumber:   input.PlateNumber,
		OwnerName:     input.OwnerName,
		OwnerType:     input.OwnerType,
		ViolationType: input.ViolationType,
		Description:   input.Description,
		Severity:      input.Severity,
		Status:        models.StatusPending,
		ReportedBy:    input.ReportedBy,
		ReportedAt:    s.now(),
		Location:      input.Location,
		Evidence:      evidence,
	}

	// Номер нарушения считается по тому же снимку, в который оно добавляется
	err := s.store.Mutate(ctx, func(records []models.Violation) ([]models.Violation, error) {
		prior := 0
		for _, r := range records {
			if r.MatchesPlate(violation.PlateNumber) {
				prior++
			}
		}
		violation.OffenseCount = prior + 1
		return append(records, violation), nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to store violation")
		return nil, fmt.Errorf("service: could not report violation: %w", err)
	}

	metrics.ViolationsReported.Inc()
	log.WithFields(logrus.Fields{
		"violation_id":  violation.ID,
		"offense_count": violation.OffenseCount,
	}).Info("Violation reported")
	return &violation, nil
}

func (s *violationService) Get(ctx context.Context, id uuid.UUID) (*models.Violation, error) {
	v, ok := s.store.Get(ctx, id)
	if !ok {
		return nil, &models.NotFoundError{Entity: "violation", ID: id}
	}
	return &v, nil
}

// List возвращает страницу нарушений (новые первыми) и общее число совпадений
func (s *violationService) List(ctx context.Context, filter models.ViolationFilter) ([]models.Violation, int) {
	filter.Normalize()
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	matched := s.store.Query(ctx, func(v models.Violation) bool {
		if filter.Status != "" && v.Status != filter.Status {
			return false
		}
		if filter.Severity != "" && v.Severity != filter.Severity {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(v.PlateNumber), search) ||
			strings.Contains(strings.ToLower(v.OwnerName), search) ||
			strings.Contains(strings.ToLower(v.ViolationType), search)
	})

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ReportedAt.After(matched[j].ReportedAt)
	})

	total := len(matched)
	start := (filter.Page - 1) * filter.PageSize
	if start >= total {
		return []models.Violation{}, total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total
}

// transition проверяет переход по автомату и применяет изменения одной записью в слот
func (s *violationService) transition(ctx context.Context, id uuid.UUID, event string, apply func(*models.Violation)) (*models.Violation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "violation",
		"method":       "transition",
		"event":        event,
		"violation_id": id,
	})

	var updated models.Violation
	found, err := s.store.UpdateByID(ctx, id, func(v models.Violation) (models.Violation, error) {
		lifecycle := newLifecycle(v.Status)
		if err := lifecycle.Event(ctx, event); err != nil {
			return v, &models.InvalidStateError{
				Entity: "violation",
				ID:     id,
				From:   string(v.Status),
				Action: event,
			}
		}
		v.Status = models.ViolationStatus(lifecycle.Current())
		if apply != nil {
			apply(&v)
		}
		updated = v
		return v, nil
	})
	if err != nil {
		var stateErr *models.InvalidStateError
		if errors.As(err, &stateErr) {
			log.WithError(err).Warn("Rejected violation transition")
			return nil, err
		}
		log.WithError(err).Error("Failed to store violation transition")
		return nil, fmt.Errorf("service: could not %s violation: %w", event, err)
	}
	if !found {
		log.Warn("Transition requested for a non-existent violation")
		return nil, &models.NotFoundError{Entity: "violation", ID: id}
	}

	metrics.ViolationTransitions.WithLabelValues(string(updated.Status)).Inc()
	log.WithField("status", updated.Status).Info("Violation transitioned")
	return &updated, nil
}

func (s *violationService) StartInvestigation(ctx context.Context, id uuid.UUID) (*models.Violation, error) {
	return s.transition(ctx, id, EventInvestigate, nil)
}

// Resolve закрывает нарушение; повторный вызов дает InvalidStateError
func (s *violationService) Resolve(ctx context.Context, id uuid.UUID, input models.ResolveInput) (*models.Violation, error) {
	input.Action = strings.TrimSpace(input.Action)
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	resolvedAt := s.now()
	return s.transition(ctx, id, EventResolve, func(v *models.Violation) {
		v.Resolution = &models.Resolution{
			Action:     input.Action,
			ResolvedBy: input.ResolvedBy,
			ResolvedAt: resolvedAt,
			Notes:      input.Notes,
		}
	})
}

func (s *violationService) Escalate(ctx context.Context, id uuid.UUID, escalatedBy, notes string) (*models.Violation, error) {
	escalatedAt := s.now()
	return s.transition(ctx, id, EventEscalate, func(v *models.Violation) {
		v.Escalation = &models.Escalation{
			EscalatedBy: escalatedBy,
			EscalatedAt: escalatedAt,
			Notes:       notes,
		}
	})
}

// ApplyPenalty добавляет наказание в историю нарушения.
// Статус не проверяется, если не включен REQUIRE_REVIEW_BEFORE_PENALTY.
func (s *violationService) ApplyPenalty(ctx context.Context, id uuid.UUID, input models.PenaltyInput) (*models.Violation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "violation",
		"method":       "ApplyPenalty",
		"violation_id": id,
		"penalty_type": input.Type,
	})

	kind, days, err := models.ParsePenaltyType(input.Type)
	if err != nil {
		log.WithError(err).Warn("Unknown penalty type")
		return nil, &models.ValidationError{Fields: []string{"penalty_type"}}
	}
	penalty := models.Penalty{
		Kind:         kind,
		DurationDays: days,
		AppliedBy:    input.AppliedBy,
		AppliedAt:    s.now(),
		Notes:        input.Notes,
	}

	var updated models.Violation
	found, err := s.store.UpdateByID(ctx, id, func(v models.Violation) (models.Violation, error) {
		if s.requireReview && v.Status == models.StatusPending {
			return v, &models.InvalidStateError{
				Entity: "violation",
				ID:     id,
				From:   string(v.Status),
				Action: "apply penalty to",
			}
		}
		history := make([]models.Penalty, 0, len(v.Penalties)+1)
		history = append(history, v.Penalties...)
		v.Penalties = append(history, penalty)
		updated = v
		return v, nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to apply penalty")
		return nil, err
	}
	if !found {
		log.Warn("Penalty requested for a non-existent violation")
		return nil, &models.NotFoundError{Entity: "violation", ID: id}
	}

	metrics.PenaltiesApplied.WithLabelValues(string(kind)).Inc()
	log.WithField("penalties", len(updated.Penalties)).Info("Penalty applied")
	return &updated, nil
}

// ViolationsByPlate - точное совпадение номера без учета регистра
func (s *violationService) ViolationsByPlate(ctx context.Context, plate string) []models.Violation {
	return s.store.Query(ctx, func(v models.Violation) bool {
		return v.MatchesPlate(plate)
	})
}

func (s *violationService) HasActiveViolations(ctx context.Context, plate string) bool {
	for _, v := range s.ViolationsByPlate(ctx, plate) {
		if !v.IsResolved() {
			return true
		}
	}
	return false
}

// SuspendedVehicles - номера с числом незакрытых нарушений не меньше порога.
// Примененные наказания здесь не учитываются, см. VehiclePenalty.
func (s *violationService) SuspendedVehicles(ctx context.Context) []string {
	return suspendedPlates(s.store.LoadAll(ctx), s.threshold)
}

func suspendedPlates(violations []models.Violation, threshold int) []string {
	unresolved := make(map[string]int)
	for _, v := range violations {
		if !v.IsResolved() {
			unresolved[models.NormalizePlate(v.PlateNumber)]++
		}
	}
	plates := make([]string, 0)
	for plate, n := range unresolved {
		if n >= threshold {
			plates = append(plates, plate)
		}
	}
	sort.Strings(plates)
	return plates
}

// VehiclePenalty определяет статус по последнему примененному наказанию среди нарушений номера
func (s *violationService) VehiclePenalty(ctx context.Context, plate string) models.VehiclePenalty {
	result := models.VehiclePenalty{PlateNumber: models.NormalizePlate(plate)}

	var latest *models.Penalty
	for _, v := range s.ViolationsByPlate(ctx, plate) {
		for i := range v.Penalties {
			p := v.Penalties[i]
			if latest == nil || !p.AppliedAt.Before(latest.AppliedAt) {
				latest = &p
			}
		}
	}
	if latest == nil {
		return result
	}

	result.Penalty = latest.Label()
	result.Duration = latest.DurationLabel()
	result.ExpiresAt = latest.ExpiresAt()
	result.IsSuspended = latest.InForce(s.now())
	return result
}

func (s *violationService) Summary(ctx context.Context) models.ViolationSummary {
	return BuildSummary(s.store.LoadAll(ctx), s.threshold)
}
