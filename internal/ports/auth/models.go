package auth

// Claims representa la identidad extraída del token.
// UserID es el subject del token; el resto del sistema lo trata como
// string opaco (acá coincide con el username).
type Claims struct {
	UserID string
}
