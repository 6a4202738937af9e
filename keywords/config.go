package keywords

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// EnvVar names the environment variable holding the override file path.
const EnvVar = "VLIER_PARSER_KEYWORDS"

// ErrMalformed is returned when an override file cannot be used.
var ErrMalformed = errors.New("malformed keyword configuration")

// Config is the complete set of parser keywords.
type Config struct {
	Week       []string
	Date       []string
	Lesson     []string
	Subject    []string
	Objective  []string
	Homework   []string
	Assignment []string
	Handin     []string
	Exam       []string
	Resource   []string
	Note       []string
	Class      []string
	Location   []string

	DeadlineTerms []string
	HolidayTerms  []string
	ExamTerms     []string
}

// Default returns the built-in Dutch keyword sets.
func Default() *Config {
	return &Config{
		Week:       []string{"week", "wk", "weeknummer", "lesweek", "weeknr"},
		Date:       []string{"datum", "data", "dag"},
		Lesson:     []string{"les", "lesnummer", "lesuur", "lessen"},
		Subject:    []string{"onderwerp", "inhoud", "thema", "hoofdstuk", "lesstof", "stof", "paragraaf", "programma", "activiteit"},
		Objective:  []string{"leerdoel", "doelen", "doel"},
		Homework:   []string{"huiswerk", "voorbereiding", "maakwerk", "leerwerk", "hw"},
		Assignment: []string{"opdracht", "opdrachten", "taak", "taken", "project", "po"},
		Handin:     []string{"inleveren", "inleverdatum", "deadline", "in te leveren", "inlevermoment"},
		Exam:       []string{"toets", "toetsen", "proefwerk", "schoolexamen", "tentamen", "beoordeling", "toetsing", "pta", "so", "pw", "se"},
		Resource:   []string{"bron", "bronnen", "materiaal", "lesmateriaal", "link", "links", "boek", "methode"},
		Note:       []string{"opmerking", "opmerkingen", "notitie", "notities", "bijzonderheden", "toelichting", "extra", "info"},
		Class:      []string{"klas", "klassen", "groep", "cluster"},
		Location:   []string{"lokaal", "locatie", "ruimte", "waar"},

		DeadlineTerms: []string{"inleveren", "inleverdatum", "deadline", "uiterlijk", "in te leveren", "ingeleverd"},
		HolidayTerms: []string{
			"vakantie", "herfstvakantie", "kerstvakantie", "voorjaarsvakantie", "krokusvakantie",
			"meivakantie", "zomervakantie", "vrij", "vrije dag", "lesvrij", "lesvrije dag", "studiedag",
			"goede vrijdag", "pasen", "tweede paasdag", "paasmaandag", "pinksteren", "tweede pinksterdag",
			"koningsdag", "hemelvaart", "hemelvaartsdag", "bevrijdingsdag",
		},
		ExamTerms: []string{
			"toets", "proefwerk", "so", "pw", "se", "schoolexamen", "tentamen", "mondeling",
			"schriftelijke overhoring", "praktische opdracht", "po", "herkansing", "toetsweek",
		},
	}
}

// FromEnv loads the override file named by VLIER_PARSER_KEYWORDS on top of
// the defaults. Without the variable it returns Default().
func FromEnv() (*Config, error) {
	path := strings.TrimSpace(os.Getenv(EnvVar))
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Load reads a JSON override file on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrMalformed, path, err)
	}

	cfg := Default()
	fields := cfg.fields()

	for _, key := range v.AllKeys() {
		// Nested objects flatten to dotted keys, which are never valid.
		target, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", ErrMalformed, key)
		}
		values, err := stringList(v.Get(key))
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrMalformed, key, err)
		}
		if len(values) > 0 {
			*target = values
		}
	}

	return cfg, nil
}

// Keys returns the JSON key names accepted by Load.
func Keys() []string {
	var keys []string
	for k := range Default().fields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) fields() map[string]*[]string {
	return map[string]*[]string{
		"week_headers":       &c.Week,
		"date_headers":       &c.Date,
		"lesson_headers":     &c.Lesson,
		"subject_headers":    &c.Subject,
		"objective_headers":  &c.Objective,
		"homework_headers":   &c.Homework,
		"assignment_headers": &c.Assignment,
		"handin_headers":     &c.Handin,
		"exam_headers":       &c.Exam,
		"resource_headers":   &c.Resource,
		"note_headers":       &c.Note,
		"class_headers":      &c.Class,
		"location_headers":   &c.Location,
		"deadline_terms":     &c.DeadlineTerms,
		"holiday_terms":      &c.HolidayTerms,
		"exam_terms":         &c.ExamTerms,
	}
}

// stringList accepts a single string or an array of strings.
func stringList(raw any) ([]string, error) {
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}

	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		add(val)
	case []string:
		for _, s := range val {
			add(s)
		}
	case []any:
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, want string", i, item)
			}
			add(s)
		}
	default:
		return nil, fmt.Errorf("value is %T, want string or array of strings", raw)
	}
	return out, nil
}

// AllHeaders returns every header keyword of every column set.
func (c *Config) AllHeaders() []string {
	var out []string
	for _, set := range [][]string{
		c.Week, c.Date, c.Lesson, c.Subject, c.Objective, c.Homework, c.Assignment,
		c.Handin, c.Exam, c.Resource, c.Note, c.Class, c.Location,
	} {
		out = append(out, set...)
	}
	return out
}
