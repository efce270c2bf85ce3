package gui

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32

	// Panel colors
	PanelColor         uint32
	PanelBorderColor   uint32
	PanelHeaderBgColor uint32

	// Button colors
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Checkbox
	CheckColor uint32

	// Table colors, used to derive the default TableTheme
	BorderColor     uint32 // General border color (tables, frames)
	HeaderBgColor   uint32 // Table header background
	RowBgColor      uint32 // Even row background
	RowBgAltColor   uint32 // Odd row background
	DividerColor    uint32 // Column divider while the pointer is over the cell
	DividerHotColor uint32 // Column divider under the pointer or being dragged

	// Text input and combo box
	InputBgColor        uint32
	InputEditingBgColor uint32
	InputBorderColor    uint32
	PopupBgColor        uint32 // Combo box dropdown
	SelectedBgColor     uint32 // Selected dropdown item
	HoveredBgColor      uint32 // Dropdown item under the pointer

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Tables overrides the colors derived from the fields above.
	// nil means DefaultTableTheme(style).
	Tables TableCatalog

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // Default gap between items
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32

	// Border
	BorderSize float32

	// Scrollbar
	ScrollbarSize float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		// Panel
		PanelColor:         RGBA(20, 20, 20, 200),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		// Buttons
		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		CheckColor: RGBA(80, 170, 230, 255),

		// Table
		BorderColor:     RGBA(80, 80, 80, 255),
		HeaderBgColor:   RGBA(40, 40, 40, 255),
		RowBgColor:      RGBA(28, 28, 28, 255),
		RowBgAltColor:   RGBA(35, 35, 35, 255),
		DividerColor:    RGBA(90, 90, 90, 255),
		DividerHotColor: RGBA(80, 170, 230, 255),

		// Inputs
		InputBgColor:        RGBA(20, 20, 20, 255),
		InputEditingBgColor: RGBA(35, 35, 45, 255),
		InputBorderColor:    RGBA(90, 90, 90, 255),
		PopupBgColor:        RGBA(20, 20, 25, 255),
		SelectedBgColor:     RGBA(50, 90, 140, 255),
		HoveredBgColor:      RGBA(60, 60, 65, 255),

		// Scrollbar
		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		// Sizing
		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  3,

		BorderSize: 1,

		ScrollbarSize: 12,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(0, 0, 0, 220)
	s.PanelBorderColor = RGBA(100, 100, 100, 255)
	s.PanelHeaderBgColor = RGBA(0, 60, 90, 255) // GTA cyan tinted

	s.ButtonColor = RGBA(40, 40, 40, 255)
	s.ButtonHoveredColor = RGBA(60, 80, 100, 255)
	s.ButtonActiveColor = RGBA(0, 150, 200, 255)
	s.CheckColor = RGBA(255, 200, 0, 255) // GTA yellow

	s.BorderColor = RGBA(0, 100, 150, 255)
	s.HeaderBgColor = RGBA(0, 80, 120, 255)
	s.RowBgColor = RGBA(10, 20, 30, 255)
	s.RowBgAltColor = RGBA(20, 30, 40, 255)
	s.DividerColor = RGBA(0, 100, 150, 255)
	s.DividerHotColor = RGBA(255, 200, 0, 255)
	s.InputBorderColor = RGBA(0, 100, 150, 255)
	s.SelectedBgColor = RGBA(0, 100, 150, 255)

	s.ScrollbarBgColor = RGBA(20, 20, 20, 255)
	s.ScrollbarGrabColor = RGBA(0, 100, 150, 255)
	s.ScrollbarGrabHovered = RGBA(0, 150, 200, 255)

	s.FontScale = 1.5
	s.ItemSpacing = 6
	s.PanelPadding = 12
	s.ButtonPadding = 8
	s.ScrollbarSize = 14
	return s
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.PanelHeaderBgColor = RGBA(35, 35, 40, 255)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.HeaderBgColor = RGBA(30, 30, 36, 255)
	s.RowBgColor = RGBA(18, 18, 18, 255)
	s.RowBgAltColor = RGBA(24, 24, 28, 255)
	s.DividerHotColor = RGBA(65, 105, 225, 255) // Royal blue
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor:         RGBA(20, 20, 20, 255),
		TextDisabledColor: RGBA(150, 150, 150, 255),

		PanelColor:         RGBA(245, 245, 245, 250),
		PanelBorderColor:   RGBA(200, 200, 200, 255),
		PanelHeaderBgColor: RGBA(220, 220, 225, 255),

		ButtonColor:        RGBA(220, 220, 220, 255),
		ButtonHoveredColor: RGBA(200, 200, 200, 255),
		ButtonActiveColor:  RGBA(180, 180, 180, 255),

		CheckColor: RGBA(0, 120, 215, 255),

		// Table
		BorderColor:     RGBA(200, 200, 200, 255),
		HeaderBgColor:   RGBA(230, 230, 230, 255),
		RowBgColor:      ColorWhite,
		RowBgAltColor:   RGBA(245, 245, 248, 255),
		DividerColor:    RGBA(190, 190, 190, 255),
		DividerHotColor: RGBA(0, 120, 215, 255),

		InputBgColor:        ColorWhite,
		InputEditingBgColor: RGBA(235, 242, 250, 255),
		InputBorderColor:    RGBA(180, 180, 180, 255),
		PopupBgColor:        RGBA(250, 250, 250, 255),
		SelectedBgColor:     RGBA(0, 120, 215, 255),
		HoveredBgColor:      RGBA(225, 225, 230, 255),

		ScrollbarBgColor:     RGBA(240, 240, 240, 255),
		ScrollbarGrabColor:   RGBA(180, 180, 180, 255),
		ScrollbarGrabHovered: RGBA(160, 160, 160, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  3,

		BorderSize: 1,

		ScrollbarSize: 12,
	}
}
