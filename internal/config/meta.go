package config

import (
	"os"
	"strings"
)

// Fallback lists used when the environment does not override them.
var (
	DefaultDepartmentsOrIndividual = []string{
		"All Department",
		"Finance",
		"Sales Team",
		"Web Team",
		"Database Team",
		"Admin",
		"Individual",
		"HR",
	}

	DefaultNoticeTypes = []string{
		"Warning / Disciplinary",
		"Performance Improvement",
		"Appreciation / Recognition",
		"Attendance / Leave Issue",
		"Payroll / Compensation",
		"Contract / Role Update",
		"Advisory / Personal Reminder",
	}
)

// Meta holds the configured target-audience and notice-type vocabularies
// the validation rules are checked against.
type Meta struct {
	DepartmentsOrIndividual []string
	NoticeTypes             []string
}

func NewMeta() *Meta {
	return &Meta{
		DepartmentsOrIndividual: listFromEnv("NOTICE_DEPARTMENTS", DefaultDepartmentsOrIndividual),
		NoticeTypes:             listFromEnv("NOTICE_TYPES", DefaultNoticeTypes),
	}
}

// IsValidAudience reports whether s names a configured department or the
// literal "Individual". The comparison is case-insensitive.
func (m *Meta) IsValidAudience(s string) bool {
	for _, d := range m.DepartmentsOrIndividual {
		if strings.EqualFold(d, s) {
			return true
		}
	}
	return false
}

// IsValidNoticeType reports whether s is one of the configured notice-type
// labels. Labels match exactly.
func (m *Meta) IsValidNoticeType(s string) bool {
	for _, t := range m.NoticeTypes {
		if t == s {
			return true
		}
	}
	return false
}

func listFromEnv(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
