package domain

type Office struct {
	ID                string `json:"office_id" db:"office_id"`
	Name              string `json:"office_name" db:"office_name"`
	ContactEmail      string `json:"contact_email" db:"contact_email"`
	ResponsiblePerson string `json:"responsible_person" db:"responsible_person"`
}

type CreateOfficeInput struct {
	ID                string `json:"office_id" validate:"required,max=10"`
	Name              string `json:"office_name" validate:"required"`
	ContactEmail      string `json:"contact_email" validate:"required,email"`
	ResponsiblePerson string `json:"responsible_person" validate:"required"`
}

// DefaultOffices is the seed set installed on first start.
var DefaultOffices = []Office{
	{ID: "SECURITY", Name: "Security Office", ContactEmail: "security@campus.edu", ResponsiblePerson: "Chief Security Officer"},
	{ID: "ADMIN", Name: "Administrative Office", ContactEmail: "admin@campus.edu", ResponsiblePerson: "Administrative Officer"},
	{ID: "STUDENT", Name: "Student Affairs", ContactEmail: "studentaffairs@campus.edu", ResponsiblePerson: "Student Affairs Officer"},
	{ID: "ICT", Name: "ICT Services", ContactEmail: "ict@campus.edu", ResponsiblePerson: "ICT Manager"},
	{ID: "LIBRARY", Name: "Library Office", ContactEmail: "library@campus.edu", ResponsiblePerson: "Chief Librarian"},
}
