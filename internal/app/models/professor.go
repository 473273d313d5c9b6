package models

// Professor defines the professor model based on the 'professors' table
type Professor struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	FirstName  string `json:"firstName" db:"first_name" example:"Ada"`
	LastName   string `json:"lastName" db:"last_name" example:"Lovelace"`
	Email      string `json:"email" db:"email" example:"ada@school.edu"`
	Department string `json:"department" db:"department" example:"Computer Science"`
}

// FullName returns "First Last"
func (p *Professor) FullName() string {
	return p.FirstName + " " + p.LastName
}
