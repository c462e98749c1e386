package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		Register(t)
	}
}

// thDefaultTheme returns the dark neutral theme with purple accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		HeaderFg:    "#d4d4d4",
		HeaderBg:    "#2d2d2d",
		Border:      "#3e3e3e",
		RowEvenBg:   "#1e1e1e",
		RowOddBg:    "#252525",
		SelectionBg: "#5b21b6",
		SelectionFg: "#f4f4f5",

		PagerFg:       "#9c9c9c",
		PagerDisabled: "#4a4a4a",

		EmptyText:       "#6b6b6b",
		FilterHighlight: "#f9e2af",
		HelpKey:         "#7C3AED",
		HelpDesc:        "#6b6b6b",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		HeaderFg:    "#ebdbb2",
		HeaderBg:    "#3c3836",
		Border:      "#504945",
		RowEvenBg:   "#282828",
		RowOddBg:    "#32302f",
		SelectionBg: "#d65d0e",
		SelectionFg: "#fbf1c7",

		PagerFg:       "#a89984",
		PagerDisabled: "#504945",

		EmptyText:       "#928374",
		FilterHighlight: "#fabd2f",
		HelpKey:         "#fe8019",
		HelpDesc:        "#928374",
	}
}

// thNordTheme returns the arctic blue Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#eceff4",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		HeaderFg:    "#eceff4",
		HeaderBg:    "#3b4252",
		Border:      "#434c5e",
		RowEvenBg:   "#2e3440",
		RowOddBg:    "#343b4a",
		SelectionBg: "#5e81ac",
		SelectionFg: "#eceff4",

		PagerFg:       "#d8dee9",
		PagerDisabled: "#4c566a",

		EmptyText:       "#4c566a",
		FilterHighlight: "#ebcb8b",
		HelpKey:         "#88c0d0",
		HelpDesc:        "#4c566a",
	}
}

// thCatppuccinTheme returns the pastel Catppuccin Mocha theme.
func thCatppuccinTheme() Theme {
	return Theme{
		Name:       "catppuccin",
		Background: "#1e1e2e",
		Foreground: "#cdd6f4",
		Dim:        "#6c7086",
		Accent:     "#cba6f7",

		HeaderFg:    "#cdd6f4",
		HeaderBg:    "#313244",
		Border:      "#45475a",
		RowEvenBg:   "#1e1e2e",
		RowOddBg:    "#262637",
		SelectionBg: "#9399b2",
		SelectionFg: "#11111b",

		PagerFg:       "#a6adc8",
		PagerDisabled: "#45475a",

		EmptyText:       "#6c7086",
		FilterHighlight: "#f9e2af",
		HelpKey:         "#cba6f7",
		HelpDesc:        "#6c7086",
	}
}

// thDraculaTheme returns the Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		HeaderFg:    "#f8f8f2",
		HeaderBg:    "#343746",
		Border:      "#44475a",
		RowEvenBg:   "#282a36",
		RowOddBg:    "#2e303e",
		SelectionBg: "#44475a",
		SelectionFg: "#f8f8f2",

		PagerFg:       "#bfbfbf",
		PagerDisabled: "#44475a",

		EmptyText:       "#6272a4",
		FilterHighlight: "#f1fa8c",
		HelpKey:         "#bd93f9",
		HelpDesc:        "#6272a4",
	}
}

// thTokyoNightTheme returns the Tokyo Night theme.
func thTokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyo-night",
		Background: "#1a1b26",
		Foreground: "#c0caf5",
		Dim:        "#565f89",
		Accent:     "#7aa2f7",

		HeaderFg:    "#c0caf5",
		HeaderBg:    "#24283b",
		Border:      "#292e42",
		RowEvenBg:   "#1a1b26",
		RowOddBg:    "#1f2131",
		SelectionBg: "#3d59a1",
		SelectionFg: "#c0caf5",

		PagerFg:       "#a9b1d6",
		PagerDisabled: "#3b4261",

		EmptyText:       "#565f89",
		FilterHighlight: "#e0af68",
		HelpKey:         "#7aa2f7",
		HelpDesc:        "#565f89",
	}
}
