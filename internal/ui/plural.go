package ui

import "github.com/gertd/go-pluralize"

var inflect = pluralize.NewClient()

// Plural formats n with word, inflected for the count ("1 display", "2 displays").
func Plural(word string, n int) string {
	return inflect.Pluralize(word, n, true)
}
