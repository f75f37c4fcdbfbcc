package locale

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Table holds the names for one language. Weekday lists start on Sunday.
type Table struct {
	MonthsLong    []string `yaml:"months_long"`
	MonthsShort   []string `yaml:"months_short"`
	WeekdaysLong  []string `yaml:"weekdays_long"`
	WeekdaysShort []string `yaml:"weekdays_short"`
}

func (t Table) validate() error {
	if len(t.MonthsLong) != 12 || len(t.MonthsShort) != 12 {
		return fmt.Errorf("expected 12 month names, got %d long and %d short", len(t.MonthsLong), len(t.MonthsShort))
	}
	if len(t.WeekdaysLong) != 7 || len(t.WeekdaysShort) != 7 {
		return fmt.Errorf("expected 7 weekday names, got %d long and %d short", len(t.WeekdaysLong), len(t.WeekdaysShort))
	}
	return nil
}

// Tables is a Source backed by in-memory name tables keyed by base
// language ("en", "de").
type Tables map[string]Table

// Months implements Source.
func (t Tables) Months(language string, length Length) ([]string, bool) {
	table, ok := t[language]
	if !ok {
		return nil, false
	}
	if length == Short {
		return table.MonthsShort, true
	}
	return table.MonthsLong, true
}

// Weekdays implements Source.
func (t Tables) Weekdays(language string, length Length) ([]string, bool) {
	table, ok := t[language]
	if !ok {
		return nil, false
	}
	if length == Short {
		return table.WeekdaysShort, true
	}
	return table.WeekdaysLong, true
}

// LoadTables decodes a YAML document mapping language tags to tables.
// Keys are normalised to their base language; a key that is not a language
// tag, or two keys with the same base language, are errors.
func LoadTables(r io.Reader) (Tables, error) {
	raw := map[string]Table{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return Tables{}, nil
		}
		return nil, fmt.Errorf("decode locale tables: %w", err)
	}

	tables := make(Tables, len(raw))
	seen := make(map[string]string, len(raw))
	for tag, table := range raw {
		base := Normalize(tag)
		if base == "" {
			return nil, fmt.Errorf("locale %q: not a language tag", tag)
		}
		if prev, ok := seen[base]; ok {
			return nil, fmt.Errorf("locales %q and %q both name language %s", prev, tag, base)
		}
		seen[base] = tag
		if err := table.validate(); err != nil {
			return nil, fmt.Errorf("locale %s: %w", tag, err)
		}
		tables[base] = table
	}
	return tables, nil
}

// Merge returns a copy of t overlaid with other.
func (t Tables) Merge(other Tables) Tables {
	merged := make(Tables, len(t)+len(other))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Builtin carries the languages shipped with the picker.
var Builtin = Tables{
	"en": {
		MonthsLong:    []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		MonthsShort:   []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		WeekdaysLong:  []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
	"de": {
		MonthsLong:    []string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		MonthsShort:   []string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		WeekdaysLong:  []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		WeekdaysShort: []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	"fr": {
		MonthsLong:    []string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthsShort:   []string{"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
		WeekdaysLong:  []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		WeekdaysShort: []string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
	},
	"es": {
		MonthsLong:    []string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		MonthsShort:   []string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		WeekdaysLong:  []string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		WeekdaysShort: []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
	"ru": {
		MonthsLong:    []string{"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
		MonthsShort:   []string{"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
		WeekdaysLong:  []string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		WeekdaysShort: []string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
	},
}
