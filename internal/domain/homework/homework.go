// internal/domain/homework/homework.go
package homework

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Status is the review status code reported by the Practicum API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// UpdateToken is the opaque "date_updated" value of a homework.
// Strings are kept unquoted, any other JSON value as its compact literal,
// so two tokens compare equal only when the API returned the same value.
type UpdateToken string

// UnmarshalJSON accepts any JSON value; null is the empty token.
func (t *UpdateToken) UnmarshalJSON(data []byte) error {
	text, err := literalText(data)
	if err != nil {
		return err
	}
	*t = UpdateToken(text)
	return nil
}

// Homework is one record of the "homeworks" list.
// Decoding never rejects a JSON object: fields of an unexpected type are kept
// as their literal text (status, date_updated, homework_name) or dropped
// (id, lesson_name, reviewer_comment) and left to ParseStatus to judge.
type Homework struct {
	ID              int64
	Name            *string // nil only when the API omitted the field
	Status          Status
	DateUpdated     UpdateToken
	LessonName      string
	ReviewerComment string
}

func (h *Homework) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var hw Homework
	if raw, ok := fields["homework_name"]; ok {
		name, err := literalText(raw)
		if err != nil {
			return err
		}
		hw.Name = &name
	}
	if raw, ok := fields["status"]; ok {
		status, err := literalText(raw)
		if err != nil {
			return err
		}
		hw.Status = Status(status)
	}
	if raw, ok := fields["date_updated"]; ok {
		if err := hw.DateUpdated.UnmarshalJSON(raw); err != nil {
			return err
		}
	}
	hw.ID = integerOrZero(fields["id"])
	hw.LessonName = stringOrEmpty(fields["lesson_name"])
	hw.ReviewerComment = stringOrEmpty(fields["reviewer_comment"])

	*h = hw
	return nil
}

// literalText returns a JSON string unquoted, null as "", and any other value
// as its compact JSON text.
func literalText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var b bytes.Buffer
	if err := json.Compact(&b, raw); err != nil {
		return "", err
	}
	return b.String(), nil
}

// integerOrZero reads an id sent as a number or a numeric string.
func integerOrZero(raw json.RawMessage) int64 {
	text, err := literalText(raw)
	if err != nil {
		return 0
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func stringOrEmpty(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// HasName reports whether the record carried a homework_name field.
func (h Homework) HasName() bool {
	return h.Name != nil
}

// DisplayName returns the homework name or an empty string.
func (h Homework) DisplayName() string {
	if h.Name == nil {
		return ""
	}
	return *h.Name
}

// Key identifies the homework for duplicate suppression: the API id when
// present, otherwise the name.
func (h Homework) Key() string {
	if h.ID != 0 {
		return "id:" + strconv.FormatInt(h.ID, 10)
	}
	return "name:" + h.DisplayName()
}
