package doctype

import "strings"

// DocType is an administrative document category (contract, payslip,
// certificate...).
type DocType struct {
	id    string
	code  string
	label string
}

func New(code, label string) DocType {
	return DocType{code: normalizeCode(code), label: strings.TrimSpace(label)}
}

func Hydrate(id, code, label string) DocType {
	return DocType{id: id, code: normalizeCode(code), label: strings.TrimSpace(label)}
}

func (d DocType) ID() string     { return d.id }
func (d DocType) Code() string   { return d.code }
func (d DocType) Label() string  { return d.label }
func (d DocType) ItemID() string { return d.id }

func normalizeCode(v string) string { return strings.ToUpper(strings.TrimSpace(v)) }
