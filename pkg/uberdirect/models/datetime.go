package models

import (
	"encoding/json"
	"fmt"
	"time"

	"uberdirect/pkg/uberdirect/uberr"
)

// WireLayout - формат, в котором Uber принимает время в запросах.
const WireLayout = "2006-01-02T15:04:05Z"

// LocalDateTime хранит момент времени в локальной зоне процесса.
// В JSON пишется как UTC с суффиксом Z, читается любой RFC 3339.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime отбрасывает доли секунды: на проводе их все равно нет.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t.Truncate(time.Second).Local()}
}

func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return LocalDateTime{}, uberr.Wrap(uberr.KindParse, fmt.Sprintf("parse date time %q", s), err)
	}
	return LocalDateTime{Time: t.Local()}, nil
}

func (d LocalDateTime) String() string {
	return d.UTC().Format(WireLayout)
}

func (d LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *LocalDateTime) UnmarshalText(b []byte) error {
	parsed, err := ParseLocalDateTime(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *LocalDateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return uberr.Wrap(uberr.KindParse, fmt.Sprintf("date time is not a string: %s", b), err)
	}
	return d.UnmarshalText([]byte(s))
}

// Ptr удобен при заполнении опциональных полей запроса.
func (d LocalDateTime) Ptr() *LocalDateTime {
	return &d
}
