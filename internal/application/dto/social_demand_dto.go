package dto

import "time"

// CreateDemandRequest entrada para crear una demanda de social media.
type CreateDemandRequest struct {
	Title       string  `json:"demanda" validate:"required,max=200"`
	CustomerID  string  `json:"cliente_id" validate:"required"`
	OrderID     *string `json:"pedido_id"`
	ArtType     string  `json:"tipo_arte" validate:"required,max=50"`
	Theme       string  `json:"tema_conteudo"`
	RequestedAt *Date   `json:"data_solicitacao"`
	DeliveryAt  *Date   `json:"data_entrega"`
	Status      string  `json:"status"`
	Priority    string  `json:"prioridade"`
	Notes       string  `json:"observacoes"`
	FinalFile   string  `json:"arquivo_final"`
	Approved    bool    `json:"aprovado"`
}

// UpdateDemandRequest actualización parcial de una demanda.
type UpdateDemandRequest struct {
	Title       *string `json:"demanda" validate:"omitempty,min=1,max=200"`
	CustomerID  *string `json:"cliente_id"`
	OrderID     *string `json:"pedido_id"`
	ArtType     *string `json:"tipo_arte"`
	Theme       *string `json:"tema_conteudo"`
	RequestedAt *Date   `json:"data_solicitacao"`
	DeliveryAt  *Date   `json:"data_entrega"`
	Status      *string `json:"status"`
	Priority    *string `json:"prioridade"`
	Notes       *string `json:"observacoes"`
	FinalFile   *string `json:"arquivo_final"`
	Approved    *bool   `json:"aprovado"`
}

// DemandResponse salida de una demanda.
type DemandResponse struct {
	ID                string     `json:"id"`
	Title             string     `json:"demanda"`
	CustomerID        string     `json:"cliente_id"`
	OrderID           *string    `json:"pedido_id"`
	ArtType           string     `json:"tipo_arte"`
	Theme             string     `json:"tema_conteudo"`
	RequestedAt       time.Time  `json:"data_solicitacao"`
	DeliveryAt        *time.Time `json:"data_entrega"`
	Status            string     `json:"status"`
	Priority          string     `json:"prioridade"`
	Notes             string     `json:"observacoes"`
	FinalFile         string     `json:"arquivo_final"`
	Approved          bool       `json:"aprovado"`
	DaysUntilDelivery *int       `json:"dias_para_entrega"`
}

// DemandListResponse lista paginada de demandas.
type DemandListResponse struct {
	Items []DemandResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// DemandStatsResponse estadísticas de demandas.
type DemandStatsResponse struct {
	Total            int          `json:"total_demandas"`
	InCreation       int          `json:"em_criacao"`
	AwaitingApproval int          `json:"aguardando_aprovacao"`
	Urgent           int          `json:"urgentes"`
	ByArtType        []LabelCount `json:"por_tipo_arte"`
}
