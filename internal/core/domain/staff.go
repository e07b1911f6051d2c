package domain

// Staff is an employee directory entry.
type Staff struct {
	StaffID    string `json:"staffID"`
	Name       string `json:"name"`
	PhotoURL   string `json:"photoURL"`
	Position   string `json:"position"`
	Department string `json:"department"`
	AuditFields
}
