package repository

import (
	"database/sql"
	"errors"
	"strings"
)

// ErrNotFound when no row matches
var ErrNotFound = errors.New("repository: not found")

// Filter is a parameterized WHERE fragment, e.g. "visits > ?" with args [3]
type Filter interface {
	SQL() (string, []interface{})
}

func wrapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
