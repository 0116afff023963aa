package schema

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidateProfile(t *testing.T) {
	valid := ProfilePayload{FullName: "Ada Lovelace", Phone: "+44 20 7946 0958"}
	if verr := ValidateProfile(valid); verr != nil {
		t.Fatalf("valid payload rejected: %v", verr.Fields)
	}

	cases := []struct {
		name      string
		payload   ProfilePayload
		wantField string
	}{
		{"missing name", ProfilePayload{Phone: "+111"}, "full_name"},
		{"name too short", ProfilePayload{FullName: "A", Phone: "+111"}, "full_name"},
		{"name too long", ProfilePayload{FullName: strings.Repeat("x", 101), Phone: "+111"}, "full_name"},
		{"missing phone", ProfilePayload{FullName: "Ada Lovelace"}, "phone"},
		{"phone with letters", ProfilePayload{FullName: "Ada Lovelace", Phone: "call me"}, "phone"},
		{"bad email", ProfilePayload{FullName: "Ada Lovelace", Phone: "+111", Email: strPtr("not-an-email")}, "email"},
		{"home address too long", ProfilePayload{FullName: "Ada Lovelace", Phone: "+111", HomeAddress: strPtr(strings.Repeat("x", 501))}, "home_address"},
		{"avatar url without scheme", ProfilePayload{FullName: "Ada Lovelace", Phone: "+111", AvatarURL: strPtr("example.com/pic.png")}, "avatar_url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verr := ValidateProfile(tc.payload)
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			if _, ok := verr.Fields[tc.wantField]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tc.wantField)
			}
		})
	}
}

func TestValidateProfile_OptionalFieldsAccepted(t *testing.T) {
	p := ProfilePayload{
		FullName:    "Ada Lovelace",
		Phone:       "(020) 7946-0958",
		Email:       strPtr("ada@example.com"),
		HomeAddress: strPtr("12 St James's Square, London"),
		AvatarURL:   strPtr("https://example.com/ada.png"),
		IsProvider:  true,
	}
	if verr := ValidateProfile(p); verr != nil {
		t.Errorf("payload rejected: %v", verr.Fields)
	}
}

func TestValidateAnswers(t *testing.T) {
	cases := []struct {
		name    string
		answers map[string]any
		wantOK  bool
	}{
		{"radio matches option", map[string]any{"entityType": "individual"}, true},
		{"radio nil cleared", map[string]any{"entityType": nil}, true},
		{"radio outside options", map[string]any{"entityType": "charity"}, false},
		{"radio non-string", map[string]any{"entityType": float64(3)}, false},
		{"unknown keys pass through", map[string]any{"weekend_availability": "weekends only"}, true},
		{"plain text field", map[string]any{"shopName": "Pawfect Grooming"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verr := ValidateAnswers(tc.answers)
			if tc.wantOK && verr != nil {
				t.Errorf("rejected: %v", verr.Fields)
			}
			if !tc.wantOK && verr == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
