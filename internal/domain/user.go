package domain

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Password guarda o texto puro no dataset de seed e o hash bcrypt depois de gravado
	Password string `json:"-"`
}
