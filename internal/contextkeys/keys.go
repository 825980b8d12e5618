// Package contextkeys хранит значения запроса, которые переходят между слоями через context.
package contextkeys

// key закрыт, поэтому значения этого пакета не пересекаются с чужими ключами.
type key int

const (
	loggerKey key = iota
	traceIDKey
	identityKey
)
