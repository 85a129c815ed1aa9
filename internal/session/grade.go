package session

// Grade maps a score percentage to a letter grade.
func Grade(percent int) string {
	switch {
	case percent >= 90:
		return "A+"
	case percent >= 80:
		return "A"
	case percent >= 70:
		return "B"
	case percent >= 60:
		return "C"
	case percent >= 50:
		return "D"
	default:
		return "F"
	}
}
