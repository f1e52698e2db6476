package scene

import "testing"

func TestSpaceLabels(t *testing.T) {
	tests := []struct {
		space Space
		label string
	}{
		{ModelSpace, "MODEL SPACE"},
		{WorldSpace, "WORLD SPACE"},
		{ViewSpace, "VIEW SPACE"},
		{ClipSpace, "CLIP SPACE"},
	}

	for _, tt := range tests {
		if got := tt.space.Label(); got != tt.label {
			t.Errorf("Label(%d): got %q, want %q", tt.space, got, tt.label)
		}
	}
}

func TestSpaceValues(t *testing.T) {
	// The numeric values are uploaded as the activeSpace uniform and
	// must match the shader's branches.
	if ModelSpace != 0 || WorldSpace != 1 || ViewSpace != 2 || ClipSpace != 3 {
		t.Errorf("space values: got %d %d %d %d, want 0 1 2 3",
			ModelSpace, WorldSpace, ViewSpace, ClipSpace)
	}
}

func TestAppliesModel(t *testing.T) {
	if ModelSpace.AppliesModel() {
		t.Error("model space must not apply the model matrix")
	}
	for _, s := range []Space{WorldSpace, ViewSpace, ClipSpace} {
		if !s.AppliesModel() {
			t.Errorf("%s should apply the model matrix", s.Label())
		}
	}
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		name    string
		want    Space
		wantErr bool
	}{
		{"model", ModelSpace, false},
		{"world", WorldSpace, false},
		{"view", ViewSpace, false},
		{"clip", ClipSpace, false},
		{"MODEL", ModelSpace, false},
		{"Clip", ClipSpace, false},
		{"screen", ModelSpace, true},
		{"", ModelSpace, true},
	}

	for _, tt := range tests {
		got, err := ParseSpace(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSpace(%q): expected error, got nil", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSpace(%q): unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSpace(%q): got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestTitleInfo(t *testing.T) {
	got := TitleInfo(ViewSpace)
	want := "VIEW SPACE (Press 1-4 to change)"
	if got != want {
		t.Errorf("TitleInfo: got %q, want %q", got, want)
	}
}
