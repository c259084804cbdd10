package utils

import (
	"strings"
)

func StrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FlattenSQL collapses a multi-line SQL statement into a single log-friendly line.
func FlattenSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
