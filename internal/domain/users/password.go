package users

// passwordSalt es el placeholder de "hashing" (no hay diseño de auth).
const passwordSalt = "abracadabra"

func HashPassword(password string) string {
	return password + passwordSalt
}
