package entity

import "time"

// Etapas de una demanda de social media.
const (
	DemandStatusBriefing         = "Briefing"
	DemandStatusCreation         = "Criação"
	DemandStatusAwaitingApproval = "Aguardando Aprovação"
	DemandStatusApproved         = "Aprovado"
	DemandStatusPublished        = "Publicado"
)

// SocialDemand pieza de contenido solicitada por un cliente.
type SocialDemand struct {
	ID          string
	Title       string
	CustomerID  string
	OrderID     *string
	ArtType     string
	Theme       string
	RequestedAt time.Time
	DeliveryAt  *time.Time
	Status      string
	Priority    string
	Notes       string
	FinalFile   string
	Approved    bool
	UpdatedAt   time.Time
}

// DaysUntilDelivery días hasta la entrega; nil sin fecha.
func (d *SocialDemand) DaysUntilDelivery(now time.Time) *int {
	return DaysUntil(d.DeliveryAt, now)
}

// IsValidDemandStatus indica si s pertenece a la enumeración de etapas.
func IsValidDemandStatus(s string) bool {
	switch s {
	case DemandStatusBriefing, DemandStatusCreation, DemandStatusAwaitingApproval, DemandStatusApproved, DemandStatusPublished:
		return true
	}
	return false
}

// IsValidDemandPriority las demandas no usan la prioridad Baixa.
func IsValidDemandPriority(s string) bool {
	return s == PriorityUrgent || s == PriorityHigh || s == PriorityNormal
}
