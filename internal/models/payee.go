package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payee is a counterparty for transactions.
type Payee struct {
	DefaultModel
	User   User      `json:"-"`
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex:payee_name_user_id"`
	Name   string    `json:"name" gorm:"uniqueIndex:payee_name_user_id"`
	Note   string    `json:"note"`
}

// BeforeSave trims whitespace from all strings.
func (p *Payee) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}
