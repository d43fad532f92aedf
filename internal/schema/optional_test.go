package schema

import (
	"encoding/json"
	"testing"
)

type optionalPayload struct {
	Name     Optional[string] `json:"name"`
	Location Optional[string] `json:"location"`
	Count    Optional[int]    `json:"count"`
}

func TestOptional_AbsentField(t *testing.T) {
	var p optionalPayload
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Name.Set {
		t.Error("absent field must not be marked as set")
	}
	if p.Name.Valid {
		t.Error("absent field must not be valid")
	}
}

func TestOptional_NullField(t *testing.T) {
	var p optionalPayload
	if err := json.Unmarshal([]byte(`{"location": null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Location.Set {
		t.Error("null field must be marked as set")
	}
	if p.Location.Valid {
		t.Error("null field must not be valid")
	}
}

func TestOptional_PresentField(t *testing.T) {
	var p optionalPayload
	if err := json.Unmarshal([]byte(`{"name": "alice", "count": 3}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Name.Set || !p.Name.Valid {
		t.Fatal("present field must be set and valid")
	}
	if p.Name.Value != "alice" {
		t.Errorf("Name.Value = %q, want %q", p.Name.Value, "alice")
	}
	if p.Count.Value != 3 {
		t.Errorf("Count.Value = %d, want 3", p.Count.Value)
	}
}

func TestOptional_Ptr(t *testing.T) {
	v := Some("hello")
	if p := v.Ptr(); p == nil || *p != "hello" {
		t.Errorf("Ptr() of a valid value = %v, want pointer to %q", p, "hello")
	}
	n := Null[string]()
	if p := n.Ptr(); p != nil {
		t.Errorf("Ptr() of a null value = %v, want nil", p)
	}
	var absent Optional[string]
	if p := absent.Ptr(); p != nil {
		t.Errorf("Ptr() of an absent value = %v, want nil", p)
	}
}

func TestOptional_MarshalRoundTrip(t *testing.T) {
	in := optionalPayload{Name: Some("bob"), Location: Null[string]()}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out optionalPayload
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Name.Valid || out.Name.Value != "bob" {
		t.Errorf("Name after round trip = %+v, want valid %q", out.Name, "bob")
	}
	if !out.Location.Set || out.Location.Valid {
		t.Errorf("Location after round trip = %+v, want set null", out.Location)
	}
}
