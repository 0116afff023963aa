// README: Static registry of wizard sections, fields, and phases.
package schema

// The registry is fixed at process start. Section order here is the order
// the wizard presents them in.
var sections = []SectionDefinition{
	{
		Key:   "basic-info",
		Label: "Basic Info",
		Fields: []FieldDefinition{
			{Key: "serviceCategory", Label: "Service Category", Type: TypeText, Mandatory: true},
			{Key: "serviceSubcategory", Label: "Service Subcategory", Type: TypeText, Mandatory: true},
			{Key: "homeAddress", Label: "Home Address", Type: TypeText, Mandatory: true},
			{
				Key:       "entityType",
				Label:     "Entity Type",
				Type:      TypeRadio,
				Mandatory: true,
				Options: []Option{
					{Key: "individual", Label: "Individual"},
					{Key: "company", Label: "Company"},
				},
			},
		},
	},
	{
		Key:   "branding",
		Label: "Branding",
		Fields: []FieldDefinition{
			{Key: "shopName", Label: "Shop Name", Type: TypeText, Mandatory: true},
			{Key: "shopDescription", Label: "Description", Type: TypeTextarea},
			{Key: "shopPhoto", Label: "Photo", Type: TypeFile},
			{Key: "shopLogo", Label: "Logo", Type: TypeFile},
			{Key: "shopWebsite", Label: "Website", Type: TypeText},
		},
	},
	{
		Key:   "booking-policy",
		Label: "Booking Policy",
		Fields: []FieldDefinition{
			{Key: "booking-policy-details", Label: "Booking Policy Details", Type: TypeTextarea, Mandatory: true},
		},
	},
	{
		Key:   "payment-policy",
		Label: "Payment Policy",
		Fields: []FieldDefinition{
			{Key: "payment-policy-details", Label: "Payment Policy Details", Type: TypeTextarea, Mandatory: true},
		},
	},
	{
		Key:   "cancellation-policy",
		Label: "Cancellation Policy",
		Fields: []FieldDefinition{
			{Key: "cancellation-policy-details", Label: "Cancellation Policy Details", Type: TypeTextarea, Mandatory: true},
		},
	},
	{
		Key:   "late-policy",
		Label: "Late Policy",
		Fields: []FieldDefinition{
			{Key: "late-policy-details", Label: "Late Policy Details", Type: TypeTextarea, Mandatory: true},
		},
	},
	{
		Key:           "service-location",
		Label:         "Service Location",
		AddressBacked: true,
	},
	{
		Key:   "personalization",
		Label: "Personalization",
	},
	{
		Key:   "list-services",
		Label: "List Services",
	},
}

var phases = []Phase{
	{Key: "shop-profile", Label: "Create Your Shop Profile", Sections: []string{"basic-info", "branding"}},
	{Key: "business-logistics", Label: "Set Your Business Preferences", Sections: []string{"booking-policy", "payment-policy", "cancellation-policy", "late-policy", "service-location"}},
	{Key: "personalization", Label: "Personalize Your Shop", Sections: []string{"personalization"}},
	{Key: "list-services", Label: "List Your Services", Sections: []string{"list-services"}},
}

var sectionIndex = func() map[string]*SectionDefinition {
	idx := make(map[string]*SectionDefinition, len(sections))
	for i := range sections {
		idx[sections[i].Key] = &sections[i]
	}
	return idx
}()

// cloneSection copies a definition down to its options so callers cannot
// mutate the registry through returned values.
func cloneSection(s *SectionDefinition) *SectionDefinition {
	out := *s
	if s.Fields != nil {
		out.Fields = make([]FieldDefinition, len(s.Fields))
		copy(out.Fields, s.Fields)
		for i := range out.Fields {
			if opts := out.Fields[i].Options; opts != nil {
				out.Fields[i].Options = append([]Option(nil), opts...)
			}
		}
	}
	return &out
}

// Sections returns all section definitions in wizard order. The returned
// definitions are copies.
func Sections() []SectionDefinition {
	out := make([]SectionDefinition, len(sections))
	for i := range sections {
		out[i] = *cloneSection(&sections[i])
	}
	return out
}

// Section looks up a section by key. The returned definition is a copy.
func Section(key string) (*SectionDefinition, bool) {
	s, ok := sectionIndex[key]
	if !ok {
		return nil, false
	}
	return cloneSection(s), true
}

// Phases returns the presentation groupings in display order.
func Phases() []Phase {
	return phases
}
