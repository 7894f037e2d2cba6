package models

// Professor is a row of public.professor.
type Professor struct {
	ID    int64   `db:"id" json:"id"`
	Nome  string  `db:"nome" json:"nome"`
	Email string  `db:"email" json:"email"`
	Senha string  `db:"senha" json:"-"`
	Token *string `db:"token" json:"-"`
}
