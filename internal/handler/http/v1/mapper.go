package v1

import "github.com/shenikar/vehicle_gatepass/internal/models"

const (
	timeInLayout = "15:04:05"
	dateInLayout = "2006-01-02"
)

// DTOToViolationInput преобразует рапорт в входные данные сервиса
func DTOToViolationInput(dto ReportViolationRequest) models.ViolationInput {
	return models.ViolationInput{
		PlateNumber:   dto.PlateNumber,
		OwnerName:     dto.OwnerName,
		OwnerType:     models.OwnerType(dto.OwnerType),
		ViolationType: dto.ViolationType,
		Description:   dto.Description,
		Severity:      models.Severity(dto.Severity),
		ReportedBy:    dto.ReportedBy,
		Location:      dto.Location,
		Evidence:      dto.Evidence,
	}
}

func modelToPenaltyResponse(p models.Penalty) PenaltyResponse {
	return PenaltyResponse{
		Type:      p.Label(),
		Kind:      string(p.Kind),
		Duration:  p.DurationLabel(),
		AppliedBy: p.AppliedBy,
		AppliedAt: p.AppliedAt,
		Notes:     p.Notes,
	}
}

// ModelToViolationResponse преобразует доменную модель в DTO для ответа
func ModelToViolationResponse(model *models.Violation) *ViolationResponse {
	resp := &ViolationResponse{
		ID:            model.ID,
		PlateNumber:   model.PlateNumber,
		OwnerName:     model.OwnerName,
		OwnerType:     string(model.OwnerType),
		ViolationType: model.ViolationType,
		Description:   model.Description,
		Severity:      string(model.Severity),
		Status:        string(model.Status),
		ReportedBy:    model.ReportedBy,
		ReportedAt:    model.ReportedAt,
		Location:      model.Location,
		Evidence:      model.Evidence,
		OffenseCount:  model.OffenseCount,
		Resolution:    model.Resolution,
		Escalation:    model.Escalation,
		Penalties:     make([]PenaltyResponse, 0, len(model.Penalties)),
	}
	if resp.Evidence == nil {
		resp.Evidence = []string{}
	}
	for _, p := range model.Penalties {
		resp.Penalties = append(resp.Penalties, modelToPenaltyResponse(p))
	}
	if current := model.CurrentPenalty(); current != nil {
		cp := modelToPenaltyResponse(*current)
		resp.CurrentPenalty = &cp
	}
	return resp
}

// ModelsToViolationResponses преобразует слайс моделей в слайс DTO
func ModelsToViolationResponses(list []models.Violation) []*ViolationResponse {
	responses := make([]*ViolationResponse, len(list))
	for i := range list {
		responses[i] = ModelToViolationResponse(&list[i])
	}
	return responses
}

func DTOToNotificationInput(dto EmitNotificationRequest) models.NotificationInput {
	return models.NotificationInput{
		Type:        models.NotificationType(dto.Type),
		Title:       dto.Title,
		Message:     dto.Message,
		PlateNumber: dto.PlateNumber,
		Priority:    models.Priority(dto.Priority),
	}
}

func DTOToPassInput(dto IssuePassRequest) models.PassInput {
	return models.PassInput{
		FullName:     dto.FullName,
		LicensePlate: dto.LicensePlate,
		Purpose:      dto.Purpose,
		IssuedBy:     dto.IssuedBy,
	}
}

func ModelToPassResponse(model *models.IssuedPass) *PassResponse {
	return &PassResponse{
		ID:           model.ID,
		FullName:     model.FullName,
		LicensePlate: model.LicensePlate,
		Purpose:      model.Purpose,
		IssuedBy:     model.IssuedBy,
		IssuedAt:     model.TimeIn,
		TimeIn:       model.TimeIn.UTC().Format(timeInLayout),
		DateIn:       model.TimeIn.UTC().Format(dateInLayout),
		ExitedAt:     model.TimeOut,
		Status:       string(model.Status),
	}
}

func ModelsToPassResponses(list []models.IssuedPass) []*PassResponse {
	responses := make([]*PassResponse, len(list))
	for i := range list {
		responses[i] = ModelToPassResponse(&list[i])
	}
	return responses
}
