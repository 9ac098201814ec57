package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour group. Base carries the slot's main
// colour, OnBase is legible on top of it, and Muted is a desaturated
// variant for de-emphasised uses. All colours adapt to light and dark
// terminal backgrounds.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette holds the semantic colour slots used by components.
type Palette struct {
	Primary Colour
	Surface Colour
	Success Colour
	Warning Colour
	Danger  Colour
	Info    Colour
	Neutral Colour
}

// Colour aliases ColourSet to keep Palette declarations compact.
type Colour = ColourSet

// PaletteSlot selects a semantic colour slot from a Palette. Use the
// predefined slots with modifiers: Background(PalettePrimary), etc.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups the border definitions a theme exposes.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// BorderVariant is a strongly-typed border token.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// SpacingSize enumerates the spacing tokens of the scale.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingExtraSmall
	SpacingSmall
	SpacingMedium
	SpacingLarge
)

const spacingSizeCount = int(SpacingLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyScale contains the semantic typography presets.
type TypographyScale struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyCode
	TypographyEmphasis
)

// ButtonVariant selects a button's visual treatment.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSuccess
	ButtonVariantDanger
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

// BadgeVariant selects a badge's visual treatment.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDanger
	BadgeVariantInfo
)

// VariantRegistry maps component variants to styling strategies, letting
// themes define variant styling as data rather than code.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil when unregistered.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Build one with DefaultTheme,
// LightTheme or DarkTheme and pass it through RenderContext; never mutate a
// theme that components already hold.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    spacingTable
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Mode selects which theme the host wants: an explicit configuration value
// rather than ambient global state.
type Mode int

const (
	// ModeSystem defers to the terminal's reported background via
	// lipgloss adaptive colours.
	ModeSystem Mode = iota
	ModeLight
	ModeDark
)

// ThemeForMode resolves a mode to a concrete theme.
func ThemeForMode(mode Mode) Theme {
	switch mode {
	case ModeLight:
		return LightTheme()
	case ModeDark:
		return DarkTheme()
	default:
		return DefaultTheme()
	}
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingNone:       0,
		SpacingExtraSmall: 1,
		SpacingSmall:      2,
		SpacingMedium:     3,
		SpacingLarge:      4,
	}
}

// DefaultTheme returns quilt's standard adaptive theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#4f46e5", "#818cf8"),
			OnBase: ac("#eef2ff", "#1e1b4b"),
			Muted:  ac("#4338ca", "#3730a3"),
		},
		Surface: ColourSet{
			Base:   ac("#fafaf9", "#1c1917"),
			OnBase: ac("#1c1917", "#fafaf9"),
			Muted:  ac("#e7e5e4", "#292524"),
		},
		Success: ColourSet{
			Base:   ac("#059669", "#34d399"),
			OnBase: ac("#ecfdf5", "#022c22"),
			Muted:  ac("#047857", "#065f46"),
		},
		Warning: ColourSet{
			Base:   ac("#d97706", "#fbbf24"),
			OnBase: ac("#451a03", "#451a03"),
			Muted:  ac("#b45309", "#92400e"),
		},
		Danger: ColourSet{
			Base:   ac("#dc2626", "#f87171"),
			OnBase: ac("#fef2f2", "#450a0a"),
			Muted:  ac("#b91c1c", "#991b1b"),
		},
		Info: ColourSet{
			Base:   ac("#0284c7", "#38bdf8"),
			OnBase: ac("#f0f9ff", "#082f49"),
			Muted:  ac("#0369a1", "#075985"),
		},
		Neutral: ColourSet{
			Base:   ac("#57534e", "#a8a29e"),
			OnBase: ac("#f5f5f4", "#1c1917"),
			Muted:  ac("#44403c", "#292524"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)

	return Theme{
		Palette:    palette,
		Borders:    borders,
		Spacing:    defaultSpacingTable(),
		Typography: defaultTypography(palette),
		Variants:   variants,
	}
}

// LightTheme returns the light theme variant.
func LightTheme() Theme {
	return DefaultTheme()
}

// DarkTheme returns a theme tuned for dark backgrounds.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#1c1917", Dark: "#0c0a09"},
		OnBase: lipgloss.AdaptiveColor{Light: "#fafaf9", Dark: "#e7e5e4"},
		Muted:  lipgloss.AdaptiveColor{Light: "#292524", Dark: "#1c1917"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#44403c", Dark: "#292524"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e7e5e4", Dark: "#d6d3d1"},
		Muted:  lipgloss.AdaptiveColor{Light: "#292524", Dark: "#1c1917"},
	}

	theme.Typography = defaultTypography(theme.Palette)

	theme.Variants = NewVariantRegistry()
	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)

	return theme
}

func registerButtonVariants(registry *VariantRegistry) {
	slots := map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary: PalettePrimary,
		ButtonVariantSuccess: PaletteSuccess,
		ButtonVariantDanger:  PaletteDanger,
		ButtonVariantWarning: PaletteWarning,
		ButtonVariantInfo:    PaletteInfo,
		ButtonVariantMuted:   PaletteNeutral,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSmall),
		))
	}
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault: PaletteNeutral,
		BadgeVariantPrimary: PalettePrimary,
		BadgeVariantSuccess: PaletteSuccess,
		BadgeVariantWarning: PaletteWarning,
		BadgeVariantDanger:  PaletteDanger,
		BadgeVariantInfo:    PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingExtraSmall),
		))
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Faint(true),
		Body:     body,
		Code:     body.Foreground(p.Info.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.None
	}
}

// SpacingValue returns the column count for the given spacing token.
func SpacingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= spacingSizeCount {
		index = int(SpacingSmall)
	}
	return theme.Spacing[index]
}

// TypographyStyle returns the typography preset for the given variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyTitle:
		return typo.Title
	case TypographySubtitle:
		return typo.Subtitle
	case TypographyCode:
		return typo.Code
	case TypographyEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}
