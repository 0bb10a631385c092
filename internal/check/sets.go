package check

// Layout returns the badge and cell-order checks. ThirdCellHeader is
// included only when the fixer is not going to rewrite the header.
func Layout(fix bool) []Check {
	checks := []Check{
		{"MinimumCellCount", MinimumCellCount},
		{"FirstCellBadges", FirstCellBadges},
		{"SecondCellMarkdown", SecondCellMarkdown},
	}
	if !fix {
		checks = append(checks, Check{"ThirdCellHeader", ThirdCellHeader})
	}
	return checks
}

// Outputs returns the output-cleanliness checks.
func Outputs() []Check {
	return []Check{
		{"NoStderrOutput", NoStderrOutput},
		{"ExecutionCountPresent", ExecutionCountPresent},
		{"FileSize", FileSize},
		{"NoDirectShow", NoDirectShow},
	}
}
