package sqlformat

import "slices"

// reservedWords lists the SQL clause keywords tracked for indentation.
// The slice must stay sorted; membership is checked via binary search.
var reservedWords = []string{
	"ALL",
	"AND",
	"BY",
	"DISTINCT",
	"FROM",
	"GROUP",
	"HAVING",
	"JOIN",
	"LEFT",
	"ON",
	"OR",
	"ORDER",
	"OUTER",
	"SELECT",
	"WHERE",
}

// IsReserved reports whether word is one of the clause keywords the formatter
// tracks. Matching is exact and case sensitive, so "select" is not reserved.
func IsReserved(word string) bool {
	_, found := slices.BinarySearch(reservedWords, word)
	return found
}
