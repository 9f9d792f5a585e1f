package domain

import (
	"net/url"
	"strings"
	"time"
)

// Row is one record of a remote sheet, keyed by column name.
type Row map[string]string

// Session is an opened form: a valid token bound to a released patient who
// has not answered yet.
type Session struct {
	Token     string    `json:"token"`
	CPF       string    `json:"cpf"`
	Patient   Patient   `json:"patient"`
	StartedAt time.Time `json:"started_at"`
}

// Patient is the subset of the patients sheet the form shows.
type Patient struct {
	CPF       string `json:"cpf"`
	Name      string `json:"nome"`
	BirthDate string `json:"data_nascimento"`
}

// BirthDateBR returns the birth date as dd/mm/yyyy.
func (p Patient) BirthDateBR() string { return FormatDateBR(p.BirthDate) }

// PatientFromRow extracts a Patient from a patients sheet row.
func PatientFromRow(r Row) Patient {
	return Patient{CPF: r["cpf"], Name: r["nome"], BirthDate: r["data_nascimento"]}
}

// IsYes reports whether a sheet flag cell reads "sim".
func IsYes(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "sim")
}

// OnlyDigits strips everything but 0-9, used to normalise CPFs.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDateBR turns an ISO yyyy-mm-dd date into dd/mm/yyyy. Values with
// fewer than three dash-separated parts are returned unchanged.
func FormatDateBR(iso string) string {
	if iso == "" {
		return ""
	}
	parts := strings.Split(iso, "-")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return iso
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// PortalURL builds the link back to the forms portal carrying the token.
func PortalURL(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		sep := "?"
		if strings.Contains(base, "?") {
			sep = "&"
		}
		return base + sep + "token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
