// Package storage provides the on-disk key-value store that backs wizard
// session persistence.
//
// Each key maps to one JSON file under the store directory (by default
// ~/.emetricx/state/). Writes go through a temporary file and a rename so a
// crash never leaves a half-written snapshot behind. Missing keys report an
// error matching fs.ErrNotExist.
package storage
