package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
)

type likePayload struct {
	PropertyID int64 `json:"propertyId" validate:"required,gt=0"`
	UserID     int64 `json:"userId" validate:"required,gt=0"`
}

func TestToDetailsValidationErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(likePayload{})
	if err == nil {
		t.Fatal("expected validation error for zero payload")
	}

	details := ToDetails(err)
	if len(details) != 2 {
		t.Fatalf("details = %v, want 2 entries", details)
	}
	for field, msg := range details {
		if msg != "is required" {
			t.Errorf("details[%s] = %q, want 'is required'", field, msg)
		}
	}
}

func TestToDetailsInvalidJSON(t *testing.T) {
	var p likePayload
	err := json.Unmarshal([]byte("{not json"), &p)
	if err == nil {
		t.Fatal("expected json error")
	}

	details := ToDetails(err)
	if details["payload"] != "invalid json" {
		t.Errorf("details = %v, want payload: invalid json", details)
	}
}

func TestToDetailsTypeMismatch(t *testing.T) {
	var p likePayload
	err := json.Unmarshal([]byte(`{"propertyId":"five"}`), &p)
	if err == nil {
		t.Fatal("expected unmarshal type error")
	}

	details := ToDetails(err)
	if details["payload"] != "invalid json" {
		t.Errorf("details = %v, want payload: invalid json", details)
	}
}

func TestToDetailsNil(t *testing.T) {
	if d := ToDetails(nil); d != nil {
		t.Errorf("ToDetails(nil) = %v, want nil", d)
	}
}
