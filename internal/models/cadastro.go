package models

import (
	"time"
)

// Status values a cadastro can hold. "pendente" is the initial state; the
// moderation endpoint may move a cadastro between any two states.
const (
	StatusPendente   = "pendente"
	StatusContatado  = "contatado"
	StatusConfirmado = "confirmado"
	StatusCancelado  = "cancelado"
)

// ValidStatuses lists the accepted status values in display order
var ValidStatuses = []string{StatusPendente, StatusContatado, StatusConfirmado, StatusCancelado}

// IsValidStatus reports whether s is one of the known status values
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Cadastro represents a single registration submitted through the public form.
// IP address and user agent are captured for auditing only and never leave the
// server in API responses.
type Cadastro struct {
	ID                 int64      `bson:"id" json:"id"`
	Nome               string     `bson:"nome" json:"nome"`
	Email              string     `bson:"email" json:"email"`
	Telefone           string     `bson:"telefone" json:"telefone"`
	DataNascimento     string     `bson:"data_nascimento,omitempty" json:"data_nascimento,omitempty"`
	Mensagem           string     `bson:"mensagem,omitempty" json:"mensagem,omitempty"`
	Status             string     `bson:"status" json:"status"`
	Fonte              string     `bson:"fonte" json:"fonte"`
	IPAddress          string     `bson:"ip_address,omitempty" json:"-"`
	UserAgent          string     `bson:"user_agent,omitempty" json:"-"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updated_at"`
	ContatoRealizadoEm *time.Time `bson:"contato_realizado_em,omitempty" json:"contato_realizado_em,omitempty"`
	Observacoes        string     `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
}

// CadastroInput is the public submission request body
type CadastroInput struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"dataNascimento,omitempty"`
	Mensagem       string `json:"mensagem,omitempty"`
}

// UpdateCadastroInput is the moderation update request body. Both fields are
// optional but at least one must be present.
type UpdateCadastroInput struct {
	Status      *string `json:"status,omitempty"`
	Observacoes *string `json:"observacoes,omitempty"`
}

// CadastroLog is one append-only audit entry for a cadastro
type CadastroLog struct {
	CadastroID int64     `bson:"cadastro_id" json:"cadastro_id"`
	Acao       string    `bson:"acao" json:"acao"`
	Detalhes   string    `bson:"detalhes" json:"detalhes"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Configuracao is a string-keyed operator setting
type Configuracao struct {
	Chave string `bson:"chave" json:"chave"`
	Valor string `bson:"valor" json:"valor"`
}

// Pagination carries the derived paging metadata for list responses
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination derives paging metadata from a page window and a total count
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// PaginatedCadastros is the admin list response envelope
type PaginatedCadastros struct {
	Cadastros  []Cadastro `json:"cadastros"`
	Pagination Pagination `json:"pagination"`
}
