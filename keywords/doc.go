// Package keywords holds the keyword sets used to recognise table headers,
// deadlines, holidays and assessments in Dutch study guides.
//
// A [Config] is immutable once built. [Default] returns the built-in sets;
// [Load] reads a JSON override file in which every key is either a single
// string or an array of strings:
//
//	{
//	  "week_headers": ["week", "lesweek"],
//	  "holiday_terms": "vakantie"
//	}
//
// Keys that are missing or empty keep their defaults. A file that cannot be
// parsed, has unknown keys or holds values of another type is rejected with
// an error wrapping [ErrMalformed].
//
// [FromEnv] loads the file named by the VLIER_PARSER_KEYWORDS environment
// variable, or returns the defaults when it is unset.
package keywords
