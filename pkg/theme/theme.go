// Package theme holds the built-in slide themes and validates custom ones.
//
// A theme is a set of four colors (background, secondary, text, link) and
// two CSS font stacks (titles, body). Built-in themes are fixed; custom
// themes carry a generated id and are validated before use.
package theme

import (
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/matzehuels/slidekit/pkg/errors"
)

// Theme describes the look of a deck.
type Theme struct {
	Name           string `json:"name" toml:"name" validate:"required,max=64"`
	BgColor        string `json:"bgColor" toml:"bg_color" validate:"required,hexcolor"`
	SecondaryColor string `json:"secondaryColor" toml:"secondary_color" validate:"required,hexcolor"`
	TextColor      string `json:"textColor" toml:"text_color" validate:"required,hexcolor"`
	LinkColor      string `json:"linkColor" toml:"link_color" validate:"required,hexcolor"`
	TitleFont      string `json:"titleFont" toml:"title_font" validate:"required"`
	BodyFont       string `json:"bodyFont" toml:"body_font" validate:"required"`

	// Set only on custom themes.
	ID       string `json:"id,omitempty" toml:"id,omitempty"`
	IsCustom bool   `json:"isCustom,omitempty" toml:"is_custom,omitempty"`
}

var builtin = []Theme{
	{"Default", "#ffffff", "#3b82f6", "#1f2937", "#2563eb", "'Inter', sans-serif", "'Inter', sans-serif", "", false},
	{"Dark Slate", "#1e293b", "#60a5fa", "#f1f5f9", "#93c5fd", "'Montserrat', sans-serif", "'Inter', sans-serif", "", false},
	{"Warm Sepia", "#fef7ed", "#d97706", "#451a03", "#b45309", "'Playfair Display', serif", "'Merriweather', serif", "", false},
	{"Ocean", "#ecfeff", "#06b6d4", "#164e63", "#0891b2", "'Raleway', sans-serif", "'Open Sans', sans-serif", "", false},
	{"Forest", "#f0fdf4", "#22c55e", "#14532d", "#16a34a", "'Lato', sans-serif", "'Lato', sans-serif", "", false},
	{"Midnight Pro", "#0F172A", "#A5B4FC", "#FFFFFF", "#818CF8", "'DM Sans', sans-serif", "'Inter', sans-serif", "", false},
	{"Sepia", "#FFFBEB", "#78716C", "#1C1917", "#D97706", "'Playfair Display', serif", "'Source Sans 3', sans-serif", "", false},
	{"Ocean Breeze", "#F0FDFA", "#64748B", "#0F172A", "#0D9488", "'Poppins', sans-serif", "'Poppins', sans-serif", "", false},
	{"Lavender Haze", "#F5F3FF", "#7C3AED", "#0F172A", "#8B5CF6", "'DM Sans', sans-serif", "'Poppins', sans-serif", "", false},
	{"Carbon", "#18181B", "#71717A", "#FAFAFA", "#22D3EE", "'Space Grotesk', sans-serif", "'IBM Plex Sans', sans-serif", "", false},
	{"Sunrise", "#FFFBF5", "#EA580C", "#1C1917", "#DC2626", "'Sora', sans-serif", "'Nunito', sans-serif", "", false},
}

// defaultIndex points at Warm Sepia.
const defaultIndex = 2

// Builtin returns a copy of the built-in themes in display order.
func Builtin() []Theme { return slices.Clone(builtin) }

// Default returns the theme used when a template names none.
func Default() Theme { return builtin[defaultIndex] }

// ByName looks up a built-in theme, ignoring case.
func ByName(name string) (Theme, bool) {
	for _, t := range builtin {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks colors, fonts and name. Failures are reported as
// INVALID_THEME errors naming the first offending field.
func (t Theme) Validate() error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errors.New(errors.ErrCodeInvalidTheme, "theme %q: %s fails %q", t.Name, fe.Field(), fe.Tag())
	}
	return errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %q", t.Name)
}

// NewCustom validates t and returns it as a custom theme with a fresh id.
// Names may not shadow a built-in theme or any name in taken.
func NewCustom(t Theme, taken ...string) (Theme, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	if _, ok := ByName(t.Name); ok {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "theme name %q is reserved", t.Name)
	}
	for _, n := range taken {
		if strings.EqualFold(n, t.Name) {
			return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "theme name %q already exists", t.Name)
		}
	}
	t.ID = uuid.NewString()
	t.IsCustom = true
	return t, nil
}
