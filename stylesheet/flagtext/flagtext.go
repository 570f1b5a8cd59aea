/*
Package ft (flagtext) provides a repository of strings shared by flags across wactl to enforce output consistency.
While all are constant and *should not be modified at runtime*, it is organized as a struct for clearer access.

Struct parity between Name and Usage is not guaranteed; some usages may vary too much to warrant
sharing a base string.
*/
package ft

import (
	"fmt"
	"strings"
)

// Name struct contains common flag names used across a variety of actions.
var Name = struct {
	Dryrun string
	ID     string
	Script string

	// list query manipulation

	Skip        string
	Limit       string
	Sort        string
	Filter      string
	Search      string
	Columns     string
	ShowColumns string
	Interactive string

	// output manipulation

	Output string // file output
	Append string // append to file output
	CSV    string
	JSON   string
	Table  string
}{
	Dryrun: "dryrun",
	ID:     "id",
	Script: "script",

	// list query manipulation

	Skip:        "skip",
	Limit:       "limit",
	Sort:        "sort",
	Filter:      "filter",
	Search:      "search",
	Columns:     "columns",
	ShowColumns: "show-columns",
	Interactive: "interactive",

	// output manipulation

	Output: "output",
	Append: "append",
	CSV:    "csv",
	JSON:   "json",
	Table:  "table",
}

// Usage contains shared, common flag usage descriptions used across a variety of actions.
var Usage = struct {
	Dryrun string
	ID     func(singular string) string

	// list query manipulation

	Skip        string
	Limit       func(plural string) string
	Sort        string
	Filter      string
	Search      string
	Columns     string
	ShowColumns string
	Interactive string

	// output manipulation

	Output string // file output
	Append string // append to file output
	CSV    string
	JSON   string
	Table  string
}{
	Dryrun: "feigns the action, describing what would have been done",
	ID: func(singular string) string {
		return "id of the " + singular
	},

	// list query manipulation

	Skip: "number of records to skip over before the first returned record",
	Limit: func(plural string) string {
		return "maximum number of " + plural + " to fetch"
	},
	Sort: "column to order results by.\n" +
		"Prefix with '-' for descending order (ex: -created_at).\n" +
		"Specify multiple times to sort on multiple columns.",
	Filter: "filter results by <column>__<operator>=<value> (ex: status__eq=1).\n" +
		"Specify multiple times to apply multiple filters.",
	Search:      "free-text search across the searchable columns",
	Columns:     "comma-separated list of columns to include in the results",
	ShowColumns: "display the list of available columns and exit",
	Interactive: "browse the results in an interactive table",

	// output manipulation

	Output: "file to write results to.\nTruncates file unless --append is also given.",
	Append: "append to the given output file instead of truncating it.",
	CSV:    "display results as CSV.\nMutually exclusive with --json, --table.",
	JSON:   "display results as JSON.\nMutually exclusive with --csv, --table.",
	Table: "display results in a fancy table.\nMutually exclusive with --json, --csv.\n" +
		"Default if no format flags are given.",
}

// WarnFlagIgnore returns a string about ignoring ignoredFlag due to causeFlag's existence.
func WarnFlagIgnore(ignoredFlag, causeFlag string) string {
	return fmt.Sprintf("WARN: ignoring flag --%v due to --%v", ignoredFlag, causeFlag)
}

// DeriveFlagName returns a consistent, sanitized string, usable as a flag name.
// Lower-cases the name and maps special characters to '-'.
func DeriveFlagName(title string) string {
	title = strings.ToLower(title)
	title = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\'', '"', '|', ' ':
			return '-'
		}
		return r
	}, title)
	return title
}

// Mandatory wraps and returns the given text in angle brackets to indicate that it is a required flag or argument.
func Mandatory(text string) string {
	return "<" + text + ">"
}

// Optional wraps and returns the given text in square brackets to indicate that it is an optional flag or argument.
func Optional(text string) string {
	return "[" + text + "]"
}

// MutuallyExclusive wraps and returns the given elements in curly braces to indicate that they are mutually exclusive with one another.
func MutuallyExclusive(texts []string) string {
	return "{" + strings.Join(texts, "|") + "}"
}
