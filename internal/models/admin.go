package models

// Admin is a privileged account able to view and delete enrollments.
type Admin struct {
	ID      int64  `json:"id"`
	Usuario string `json:"usuario"`
	Senha   string `json:"-"` // bcrypt hash, never exposed
}
