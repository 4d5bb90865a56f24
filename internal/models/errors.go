package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no resource for the specified ID")

	ErrBudgetExists    = errors.New("a budget already exists for this month")
	ErrGoalTypeInvalid = errors.New("the goal type is not valid")
)
