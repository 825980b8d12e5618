package domain

import "github.com/google/uuid"

// Identity - проверенный пользователь, от имени которого выполняется операция.
// Передается в use case явно, а не берется из глобального состояния.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (i Identity) IsAnonymous() bool { return i.UserID == uuid.Nil }
