package users

import "time"

// User es una cuenta registrada. Nunca se guarda la password en claro,
// solo el hash bcrypt.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
