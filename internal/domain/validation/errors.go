package validation

import (
	"errors"
	"sort"
	"strings"
)

// ObjectKey holds messages that are not attached to a single field.
const ObjectKey = "__all__"

// ErrInvalid matches every non-empty Errors value via errors.Is.
var ErrInvalid = errors.New("validation failed")

// Errors collects field-tagged and object-level validation messages.
// Checks keep adding to the same collection so callers see every violation
// at once instead of the first one only.
type Errors map[string][]string

// Validatable is implemented by entities with self-contained invariants.
type Validatable interface {
	Validate() Errors
}

func New() Errors {
	return Errors{}
}

func (e Errors) Add(field, msg string) {
	field = strings.TrimSpace(field)
	if field == "" {
		field = ObjectKey
	}
	e[field] = append(e[field], msg)
}

func (e Errors) AddObject(msg string) {
	e.Add(ObjectKey, msg)
}

func (e Errors) Merge(other Errors) {
	for field, msgs := range other {
		for _, msg := range msgs {
			e.Add(field, msg)
		}
	}
}

// MergePrefixed merges other with every field renamed to prefix.field.
// Object-level messages of other stay attached to prefix itself.
func (e Errors) MergePrefixed(prefix string, other Errors) {
	for field, msgs := range other {
		key := prefix + "." + field
		if field == ObjectKey {
			key = prefix
		}
		for _, msg := range msgs {
			e.Add(key, msg)
		}
	}
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Fields returns the keys in a stable order with the object key first.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for field := range e {
		out = append(out, field)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i] == ObjectKey {
			return out[j] != ObjectKey
		}
		if out[j] == ObjectKey {
			return false
		}
		return out[i] < out[j]
	})
	return out
}

// Err returns nil when nothing was collected.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		msgs := strings.Join(e[field], " ")
		if field == ObjectKey {
			parts = append(parts, msgs)
			continue
		}
		parts = append(parts, field+": "+msgs)
	}
	return strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == ErrInvalid && len(e) > 0
}

// Collect runs Validate on every item and merges the results.
func Collect(items ...Validatable) Errors {
	out := New()
	for _, item := range items {
		if item == nil {
			continue
		}
		out.Merge(item.Validate())
	}
	return out
}

// From extracts the collected errors from a wrapped error chain.
func From(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
