package domain

import (
	"time"
)

type ConnectionStatus string

const (
	ConnectionStatusActive   ConnectionStatus = "ACTIVE"
	ConnectionStatusInactive ConnectionStatus = "INACTIVE"
	ConnectionStatusError    ConnectionStatus = "ERROR"
)

// Connection representa uma conta de anúncios do Meta conectada por uma agência,
// com o token de longa duração usado nas extrações.
type Connection struct {
	ID           string           `json:"id"`
	AccountID    string           `json:"account_id"` // ID da conta no Meta, sem o prefixo act_
	Name         string           `json:"name"`
	Nickname     *string          `json:"nickname"`
	AccessToken  string           `json:"-"`
	Status       ConnectionStatus `json:"status"`
	LastSyncedAt *time.Time       `json:"last_synced_at"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type ConnectionResponse struct {
	ID           string           `json:"id"`
	AccountID    string           `json:"account_id"`
	Name         string           `json:"name"`
	Nickname     *string          `json:"nickname"`
	HasToken     bool             `json:"hasToken"`
	Status       ConnectionStatus `json:"status"`
	LastSyncedAt *time.Time       `json:"last_synced_at"`
}

type CreateConnectionRequest struct {
	AccountID   string  `json:"account_id"`
	Name        string  `json:"name"`
	Nickname    *string `json:"nickname,omitempty"`
	AccessToken string  `json:"access_token"`
}

type UpdateConnectionRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Nickname    *string `json:"nickname,omitempty"`
	AccessToken *string `json:"access_token,omitempty"`
	Status      *string `json:"status,omitempty"`
}
