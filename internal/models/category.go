package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryGroup groups categories for presentation.
//
// Summaries order groups by SortOrder; the payment-category group for
// credit accounts conventionally gets the highest sort order so it is
// listed last.
type CategoryGroup struct {
	DefaultModel
	User      User      `json:"-"`
	UserID    uuid.UUID `json:"userId" gorm:"uniqueIndex:category_group_name_user_id"`
	Name      string    `json:"name" gorm:"uniqueIndex:category_group_name_user_id"`
	SortOrder int       `json:"sortOrder"`
	IsSystem  bool      `json:"isSystem"`
}

// BeforeSave trims whitespace from all strings.
func (g *CategoryGroup) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	return nil
}

// Category represents a spending envelope.
//
// Hidden categories are excluded from summaries entirely. This is used
// for example for the payment categories of closed credit accounts.
type Category struct {
	DefaultModel
	Group    CategoryGroup `json:"-"`
	GroupID  uuid.UUID     `json:"groupId" gorm:"uniqueIndex:category_name_group_id"`
	Name     string        `json:"name" gorm:"uniqueIndex:category_name_group_id"`
	Note     string        `json:"note"`
	IsHidden bool          `json:"isHidden"`
	IsSystem bool          `json:"isSystem"`
	Goal     *CategoryGoal `json:"goal,omitempty"`
}

// BeforeSave trims whitespace from all strings.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}
