package homework_test

import (
	"encoding/json"
	"testing"

	"homework_status_bot/internal/domain/homework"
)

func TestHomework_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantToken homework.UpdateToken
		wantName  bool
	}{
		{"string token", `{"homework_name":"hw","status":"approved","date_updated":"2020-02-13T14:40:57Z"}`, "2020-02-13T14:40:57Z", true},
		{"numeric token", `{"homework_name":"hw","date_updated":1700000000}`, "1700000000", true},
		{"null token", `{"homework_name":"hw","date_updated":null}`, "", true},
		{"missing name", `{"status":"approved","date_updated":"t1"}`, "t1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hw homework.Homework
			if err := json.Unmarshal([]byte(tt.raw), &hw); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if hw.DateUpdated != tt.wantToken {
				t.Errorf("DateUpdated = %q, want %q", hw.DateUpdated, tt.wantToken)
			}
			if hw.HasName() != tt.wantName {
				t.Errorf("HasName() = %v, want %v", hw.HasName(), tt.wantName)
			}
		})
	}
}

func TestUpdateToken_KeepsNonScalarLiteral(t *testing.T) {
	var tok homework.UpdateToken
	if err := json.Unmarshal([]byte(`{ "a" : 1 }`), &tok); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if tok != `{"a":1}` {
		t.Errorf("token = %q, want compact object text", tok)
	}
}

func TestHomework_UnmarshalLenientFields(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantID     int64
		wantStatus homework.Status
		wantLesson string
	}{
		{"numeric status", `{"homework_name":"hw","status":5}`, 0, "5", ""},
		{"object status", `{"homework_name":"hw","status":{"code":"approved"}}`, 0, `{"code":"approved"}`, ""},
		{"non-numeric id", `{"id":"abc","homework_name":"hw","status":"approved"}`, 0, homework.StatusApproved, ""},
		{"numeric string id", `{"id":"17","homework_name":"hw","status":"approved"}`, 17, homework.StatusApproved, ""},
		{"fractional id", `{"id":1.5,"homework_name":"hw","status":"approved"}`, 0, homework.StatusApproved, ""},
		{"wrong typed informational fields", `{"id":3,"homework_name":"hw","status":"rejected","lesson_name":42,"reviewer_comment":["x"]}`, 3, homework.StatusRejected, ""},
		{"lesson name", `{"homework_name":"hw","lesson_name":"Go"}`, 0, "", "Go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hw homework.Homework
			if err := json.Unmarshal([]byte(tt.raw), &hw); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if hw.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", hw.ID, tt.wantID)
			}
			if hw.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", hw.Status, tt.wantStatus)
			}
			if hw.LessonName != tt.wantLesson {
				t.Errorf("LessonName = %q, want %q", hw.LessonName, tt.wantLesson)
			}
		})
	}
}

func TestHomework_NullNameIsPresent(t *testing.T) {
	var hw homework.Homework
	if err := json.Unmarshal([]byte(`{"homework_name":null,"status":"approved"}`), &hw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !hw.HasName() {
		t.Fatal("HasName() = false, want true for an explicit null")
	}
	if _, err := homework.ParseStatus(hw); err != nil {
		t.Errorf("ParseStatus() error = %v, want success", err)
	}
}

func TestHomework_UnparseableIDFallsBackToName(t *testing.T) {
	var hw homework.Homework
	if err := json.Unmarshal([]byte(`{"id":"abc","homework_name":"hw1"}`), &hw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := hw.Key(); got != "name:hw1" {
		t.Errorf("Key() = %q, want name:hw1", got)
	}
}

func TestHomework_Key(t *testing.T) {
	name := "hw"
	if got := (homework.Homework{ID: 42, Name: &name}).Key(); got != "id:42" {
		t.Errorf("Key() = %q, want id:42", got)
	}
	if got := (homework.Homework{Name: &name}).Key(); got != "name:hw" {
		t.Errorf("Key() = %q, want name:hw", got)
	}
}
