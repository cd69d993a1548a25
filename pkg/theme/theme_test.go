package theme

import (
	"testing"

	"github.com/matzehuels/slidekit/pkg/errors"
)

func TestBuiltinThemesValid(t *testing.T) {
	all := Builtin()
	if len(all) != 11 {
		t.Fatalf("len(Builtin()) = %d, want 11", len(all))
	}
	seen := map[string]bool{}
	for _, th := range all {
		if err := th.Validate(); err != nil {
			t.Errorf("%s: %v", th.Name, err)
		}
		if seen[th.Name] {
			t.Errorf("duplicate theme %q", th.Name)
		}
		seen[th.Name] = true
		if th.IsCustom || th.ID != "" {
			t.Errorf("%s: built-in theme carries custom fields", th.Name)
		}
	}
}

func TestDefault(t *testing.T) {
	if got := Default().Name; got != "Warm Sepia" {
		t.Errorf("Default().Name = %q, want Warm Sepia", got)
	}
}

func TestBuiltinReturnsCopy(t *testing.T) {
	a := Builtin()
	a[0].Name = "changed"
	if Builtin()[0].Name != "Default" {
		t.Error("Builtin() exposed internal slice")
	}
}

func TestByName(t *testing.T) {
	th, ok := ByName("ocean breeze")
	if !ok || th.LinkColor != "#0D9488" {
		t.Errorf("ByName(ocean breeze) = %+v, %v", th, ok)
	}
	if _, ok := ByName("nope"); ok {
		t.Error("ByName(nope) found a theme")
	}
}

func TestValidate(t *testing.T) {
	base := Theme{
		Name: "Mine", BgColor: "#fff", SecondaryColor: "#000000",
		TextColor: "#123456", LinkColor: "#abcdef",
		TitleFont: "'Inter', sans-serif", BodyFont: "serif",
	}
	tests := []struct {
		name    string
		mutate  func(*Theme)
		wantErr bool
	}{
		{"valid", func(*Theme) {}, false},
		{"missing name", func(t *Theme) { t.Name = "" }, true},
		{"bad color", func(t *Theme) { t.BgColor = "white" }, true},
		{"color without hash", func(t *Theme) { t.LinkColor = "abcdef" }, true},
		{"missing font", func(t *Theme) { t.BodyFont = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := base
			tt.mutate(&th)
			err := th.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidTheme)
			}
		})
	}
}

func TestNewCustom(t *testing.T) {
	in := Default()
	in.Name = "  Brand  "
	got, err := NewCustom(in, "Other")
	if err != nil {
		t.Fatalf("NewCustom() error = %v", err)
	}
	if got.Name != "Brand" || !got.IsCustom || got.ID == "" {
		t.Errorf("NewCustom() = %+v", got)
	}

	if _, err := NewCustom(in, "brand"); err == nil {
		t.Error("NewCustom() accepted a taken name")
	}
	in.Name = "Carbon"
	if _, err := NewCustom(in); err == nil {
		t.Error("NewCustom() accepted a built-in name")
	}
}
