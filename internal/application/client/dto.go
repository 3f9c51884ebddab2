package client

import (
	"time"

	"github.com/acme/backend/internal/application/form"
	"github.com/acme/backend/internal/domain/contract"
	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ContractInput is the bound form of a contract
type ContractInput struct {
	Code                string            `json:"code" binding:"required,contract_code"`
	InstantiationMoment time.Time         `json:"instantiationMoment" binding:"required,past"`
	ProviderName        string            `json:"providerName" binding:"required,max=75"`
	CustomerName        string            `json:"customerName" binding:"required,max=75"`
	Goals               string            `json:"goals" binding:"required,max=100"`
	Budget              valueobject.Money `json:"budget"`
	Project             string            `json:"project"`
}

// ContractListFilter holds paging for list-mine
type ContractListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=code instantiation_moment provider_name created_at"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search" binding:"max=100"`
}

// ContractResponse is the unbound view of a contract with its project choices
type ContractResponse struct {
	ID                  uuid.UUID          `json:"id"`
	Code                string             `json:"code"`
	InstantiationMoment time.Time          `json:"instantiationMoment"`
	ProviderName        string             `json:"providerName"`
	CustomerName        string             `json:"customerName"`
	Goals               string             `json:"goals"`
	Budget              valueobject.Money  `json:"budget"`
	DraftMode           bool               `json:"draftMode"`
	Project             string             `json:"project"`
	Projects            form.SelectChoices `json:"projects"`
	Version             int                `json:"version"`
}

// ContractListItem is one row of list-mine
type ContractListItem struct {
	ID           uuid.UUID         `json:"id"`
	Code         string            `json:"code"`
	ProviderName string            `json:"providerName"`
	CustomerName string            `json:"customerName"`
	Budget       valueobject.Money `json:"budget"`
	DraftMode    string            `json:"draftMode"`
}

func (in ContractInput) details() contract.Details {
	return contract.Details{
		Code:                in.Code,
		InstantiationMoment: in.InstantiationMoment,
		ProviderName:        in.ProviderName,
		CustomerName:        in.CustomerName,
		Goals:               in.Goals,
		Budget:              in.Budget,
		ProjectID:           form.ParseReference(in.Project),
	}
}

// ToContractResponse unbinds a contract
func ToContractResponse(c *contract.Contract, projects form.SelectChoices) *ContractResponse {
	return &ContractResponse{
		ID:                  c.ID,
		Code:                c.Code,
		InstantiationMoment: c.InstantiationMoment,
		ProviderName:        c.ProviderName,
		CustomerName:        c.CustomerName,
		Goals:               c.Goals,
		Budget:              c.Budget,
		DraftMode:           c.DraftMode,
		Project:             projects.Selected().Key,
		Projects:            projects,
		Version:             c.Version,
	}
}
