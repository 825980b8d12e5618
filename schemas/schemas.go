// Package schemas хранит JSON-схемы контрактов сервиса.
package schemas

import "embed"

// SchemasFS - схемы входящих запросов (requests/) и исходящих событий (events/).
// Путь имеет вид <kind>/<contract-name>/v<major>.json.
//
//go:embed requests events
var SchemasFS embed.FS
