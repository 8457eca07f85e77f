package models

import "github.com/m04kA/BRB-ScheduleService/internal/domain"

// ServiceItemResponse услуга каталога
type ServiceItemResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceItemResponse `json:"services"`
}

// ProfessionalResponse мастер салона
type ProfessionalResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
}

// ProfessionalListResponse ответ со списком мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []domain.ServiceItem) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceItemResponse, len(services)),
	}
	for i, s := range services {
		resp.Services[i] = ServiceItemResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Notes:           s.Notes,
		}
	}
	return resp
}

// FromDomainProfessional конвертирует мастера в DTO
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	if p == nil {
		return nil
	}
	return &ProfessionalResponse{
		ID:        p.ID,
		Name:      p.Name,
		Specialty: p.Specialty,
		ImageURL:  p.ImageURL,
	}
}

// FromDomainProfessionalList конвертирует список мастеров в DTO
func FromDomainProfessionalList(professionals []domain.Professional) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{
		Professionals: make([]ProfessionalResponse, len(professionals)),
	}
	for i := range professionals {
		resp.Professionals[i] = *FromDomainProfessional(&professionals[i])
	}
	return resp
}
