package models

type User struct {
	ID         int64   `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	Email      string  `db:"email" json:"email"`
	Password   []byte  `db:"password" json:"-"`
	Phone      string  `db:"phone" json:"phone"`
	Address    string  `db:"address" json:"address"`
	ProfilePic string  `db:"profile_pic" json:"photo"`
	Wallet     float64 `db:"wallet" json:"wallet"`
}
