package models

// Months is the fixed display order used across the whole app, matching the
// labels stored in the month columns.
var Months = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

func IsValidMonth(m string) bool {
	for _, month := range Months {
		if month == m {
			return true
		}
	}
	return false
}
