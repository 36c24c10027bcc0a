package models

import "github.com/google/uuid"

// Role роль пользователя, выданная провайдером идентификации.
type Role string

const (
	RoleNone     Role = ""
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

// Actor текущий пользователь запроса. Нулевое значение означает анонима.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// Authenticated сообщает, есть ли у запроса пользователь.
func (a Actor) Authenticated() bool {
	return a.UserID != uuid.Nil
}

// IsOwner владелец студии может менять портфолио.
func (a Actor) IsOwner() bool {
	return a.Authenticated() && a.Role == RoleOwner
}
