package auth

import "golang.org/x/crypto/bcrypt"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Checker сверяет введённый пароль с общим секретом. Секрет задаётся
// либо открытым текстом (NOTES_PASSWORD), либо bcrypt-хэшем
// (NOTES_PASSWORD_HASH); хэш имеет приоритет.
type Checker struct {
	plain string
	hash  string
}

func NewChecker(plain, hash string) *Checker {
	return &Checker{plain: plain, hash: hash}
}

func (c *Checker) Check(password string) bool {
	if c.hash != "" {
		return CheckPasswordHash(password, c.hash)
	}
	return c.plain != "" && password == c.plain
}
