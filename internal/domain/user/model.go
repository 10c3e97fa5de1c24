package user

import "time"

type User struct {
	ID        int
	Username  string
	Password  string // bcrypt-хэш
	CreatedAt time.Time
}
