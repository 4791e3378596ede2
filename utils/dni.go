package utils

// IsDNI reports whether s is a Peruvian DNI: exactly 8 digits. The same rule
// gates both employee creation and login, so an employee can always log in
// with the document they were registered under.
func IsDNI(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
