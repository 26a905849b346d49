package derivedform

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/avetra/hrdesk/pkg/serrors"
)

// Binding ties a derived field to its source: while the binding is in
// auto mode, derived = round2(source * Rate) on every source edit.
type Binding struct {
	Source  string
	Derived string
	Rate    decimal.Decimal
}

// Store is the create/update half of the remote collection contract.
type Store interface {
	Create(ctx context.Context, payload map[string]any) error
	Update(ctx context.Context, id string, payload map[string]any) error
}

// Notifier renders submit outcomes.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type Config struct {
	Bindings []Binding
	// KeyField names the period-key field used by Validate.
	KeyField string
	// NumericFields are normalized to numbers on submit (blank → 0).
	NumericFields []string
	// Defaults seed an empty draft.
	Defaults map[string]string

	Store    Store
	Notifier Notifier
	Logger   *logrus.Logger
}

// Form is a mutable in-progress record plus the auto/manual state of
// each derived-field binding. A fresh draft starts every binding in
// auto mode; loading an existing record for edit starts every binding
// in manual mode so stored derived values are never clobbered.
type Form struct {
	cfg      Config
	fields   map[string]string
	auto     map[string]bool
	recordID string
}

func New(cfg Config) *Form {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	f := &Form{cfg: cfg}
	f.LoadEmpty()
	return f
}

// LoadEmpty resets the draft to the configured defaults and arms every
// binding.
func (f *Form) LoadEmpty() {
	f.recordID = ""
	f.fields = make(map[string]string, len(f.cfg.Defaults))
	for k, v := range f.cfg.Defaults {
		f.fields[k] = v
	}
	f.auto = make(map[string]bool, len(f.cfg.Bindings))
	for _, b := range f.cfg.Bindings {
		f.auto[b.Derived] = true
	}
}

// LoadForEdit populates the draft from an existing record. Every
// binding comes up manual.
func (f *Form) LoadForEdit(id string, fields map[string]string) {
	f.recordID = id
	f.fields = make(map[string]string, len(fields))
	for k, v := range fields {
		f.fields[k] = v
	}
	f.auto = make(map[string]bool, len(f.cfg.Bindings))
	for _, b := range f.cfg.Bindings {
		f.auto[b.Derived] = false
	}
}

func (f *Form) IsEdit() bool       { return f.recordID != "" }
func (f *Form) RecordID() string   { return f.recordID }
func (f *Form) Field(name string) string {
	return f.fields[name]
}

// Fields returns a copy of the draft's fields.
func (f *Form) Fields() map[string]string {
	out := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		out[k] = v
	}
	return out
}

// AutoMode reports whether the binding owning the given derived field
// still recomputes.
func (f *Form) AutoMode(derived string) bool {
	return f.auto[derived]
}

// SetField updates one field. Editing a derived field flips its
// binding to manual for the rest of the draft's life. Editing a
// source field recomputes every bound derived field still in auto
// mode; a blank or unparsable source clears the derived value rather
// than showing a stale computation.
func (f *Form) SetField(name, value string) {
	f.fields[name] = value

	for _, b := range f.cfg.Bindings {
		if b.Derived == name {
			f.auto[b.Derived] = false
		}
	}
	for _, b := range f.cfg.Bindings {
		if b.Source != name || !f.auto[b.Derived] {
			continue
		}
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			f.fields[b.Derived] = ""
			continue
		}
		src, err := decimal.NewFromString(trimmed)
		if err != nil {
			f.fields[b.Derived] = ""
			continue
		}
		f.fields[b.Derived] = src.Mul(b.Rate).Round(2).String()
	}
}

// Normalize converts the numeric fields of the draft to numbers:
// blank becomes zero, anything unparsable is a validation failure,
// never a fault. Non-numeric fields pass through as strings.
func (f *Form) Normalize() (map[string]any, error) {
	payload := make(map[string]any, len(f.fields))
	for k, v := range f.fields {
		payload[k] = v
	}
	for _, name := range f.cfg.NumericFields {
		raw := strings.TrimSpace(f.fields[name])
		if raw == "" {
			payload[name] = 0.0
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, serrors.ErrValidation.WithMessage("invalid number for " + name)
		}
		n, _ := d.Float64()
		payload[name] = n
	}
	return payload, nil
}

// Submit normalizes the draft and hands it to the store: create when
// the draft has no record id, update otherwise. On success the draft
// resets to an empty one; on failure it stays intact so the user can
// retry.
func (f *Form) Submit(ctx context.Context) error {
	payload, err := f.Normalize()
	if err != nil {
		f.notifyError(err, "invalid form input")
		return err
	}

	if f.IsEdit() {
		err = f.cfg.Store.Update(ctx, f.recordID, payload)
	} else {
		err = f.cfg.Store.Create(ctx, payload)
	}
	if err != nil {
		f.cfg.Logger.WithError(err).WithField("edit", f.IsEdit()).Error("derivedform: submit failed")
		f.notifyError(err, "failed to save record")
		return err
	}

	if f.cfg.Notifier != nil {
		f.cfg.Notifier.Success("record saved")
	}
	f.LoadEmpty()
	return nil
}

func (f *Form) notifyError(err error, fallback string) {
	if f.cfg.Notifier == nil {
		return
	}
	f.cfg.Notifier.Error(serrors.UserMessage(err, fallback))
}
