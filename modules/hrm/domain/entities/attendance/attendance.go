package attendance

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// Record is one attendance entry for an employee on a given day.
type Record struct {
	id         string
	employeeID string
	employee   string
	day        time.Time
	status     Status
	hours      float64
}

func New(employeeID, employee string, day time.Time, status Status, hours float64) Record {
	return Record{
		employeeID: strings.TrimSpace(employeeID),
		employee:   strings.TrimSpace(employee),
		day:        day,
		status:     status,
		hours:      hours,
	}
}

func Hydrate(id, employeeID, employee string, day time.Time, status Status, hours float64) Record {
	r := New(employeeID, employee, day, status, hours)
	r.id = id
	return r
}

func (r Record) ID() string         { return r.id }
func (r Record) EmployeeID() string { return r.employeeID }
func (r Record) Employee() string   { return r.employee }
func (r Record) Day() time.Time     { return r.day }
func (r Record) Status() Status     { return r.status }
func (r Record) Hours() float64     { return r.hours }
func (r Record) ItemID() string     { return r.id }
