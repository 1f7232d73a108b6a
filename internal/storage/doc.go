// Package storage provides the session-scoped key/value storage that holds
// the encrypted credential record.
//
// Two backends are available:
//
//   - Memory: a mutex-guarded map living as long as the process, the
//     equivalent of a browser tab's session storage.
//   - SQLRepository: a single table reached through database/sql, using
//     modernc.org/sqlite (driver "sqlite") or pgx (driver "pgx"). The schema
//     is applied with goose from embedded migrations.
//
// Values are strings. Get returns common.ErrorNotFound for a missing key;
// Delete of a missing key is not an error.
package storage
