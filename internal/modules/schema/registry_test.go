package schema

import "testing"

func TestSection_ReturnsCopy(t *testing.T) {
	s, ok := Section("basic-info")
	if !ok {
		t.Fatal("basic-info not found")
	}
	s.Label = "mutated"
	s.Fields[0].Mandatory = false
	s.Fields[3].Options[0].Key = "mutated"

	fresh, _ := Section("basic-info")
	if fresh.Label != "Basic Info" {
		t.Errorf("Label = %q, registry was mutated through a returned value", fresh.Label)
	}
	if !fresh.Fields[0].Mandatory {
		t.Error("Mandatory flag was mutated through a returned value")
	}
	if fresh.Fields[3].Options[0].Key != "individual" {
		t.Error("radio options were mutated through a returned value")
	}
}

func TestSections_ReturnsCopies(t *testing.T) {
	all := Sections()
	all[0].Key = "mutated"
	all[0].Fields[0].Key = "mutated"

	fresh := Sections()
	if fresh[0].Key != "basic-info" || fresh[0].Fields[0].Key != "serviceCategory" {
		t.Error("registry was mutated through Sections()")
	}
}

func TestSection_UnknownKey(t *testing.T) {
	if _, ok := Section("no-such-section"); ok {
		t.Error("unknown key must report not found")
	}
}
