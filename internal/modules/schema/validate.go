// README: Payload validation with field-level errors.
package schema

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ValidationError carries per-field messages for a rejected payload.
// Payloads that fail here are never sent upstream.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

// ProfilePayload is the shape accepted by the profile gateway.
type ProfilePayload struct {
	FullName    string  `json:"full_name"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	HomeAddress *string `json:"home_address,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	IsProvider  bool    `json:"is_provider,omitempty"`
}

var (
	rePhone = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateProfile checks a profile payload field by field. A nil return
// means the payload is safe to forward.
func ValidateProfile(p ProfilePayload) *ValidationError {
	fields := map[string]string{}

	name := strings.TrimSpace(p.FullName)
	switch {
	case name == "":
		fields["full_name"] = "full name is required"
	case len(name) < 2:
		fields["full_name"] = "full name must be at least 2 characters"
	case len(name) > 100:
		fields["full_name"] = "full name must be at most 100 characters"
	}

	phone := strings.TrimSpace(p.Phone)
	switch {
	case phone == "":
		fields["phone"] = "phone is required"
	case !rePhone.MatchString(phone):
		fields["phone"] = "invalid phone format"
	}

	if p.Email != nil && !reEmail.MatchString(*p.Email) {
		fields["email"] = "invalid email format"
	}

	if p.HomeAddress != nil && len(*p.HomeAddress) > 500 {
		fields["home_address"] = "home address must be at most 500 characters"
	}

	if p.AvatarURL != nil {
		u, err := url.Parse(*p.AvatarURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			fields["avatar_url"] = "invalid URL format"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateAnswers checks answer values against the registry where a field
// is defined: radio values must be one of the declared options. Keys with
// no registered field pass through untouched; the answer namespace is open
// because AI-recommended fields land in it too.
func ValidateAnswers(answers map[string]any) *ValidationError {
	fieldIndex := make(map[string]*FieldDefinition)
	for i := range sections {
		for j := range sections[i].Fields {
			f := &sections[i].Fields[j]
			fieldIndex[f.Key] = f
		}
	}

	fields := map[string]string{}
	for key, val := range answers {
		def, ok := fieldIndex[key]
		if !ok {
			continue
		}
		if def.Type == TypeRadio {
			if val == nil {
				continue
			}
			s, isStr := val.(string)
			if !isStr {
				fields[key] = "radio value must be a string"
				continue
			}
			valid := false
			for _, opt := range def.Options {
				if opt.Key == s {
					valid = true
					break
				}
			}
			if !valid && s != "" {
				fields[key] = fmt.Sprintf("value %q is not an option", s)
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
