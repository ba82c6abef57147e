package users

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null;uniqueIndex:idx_users_username" json:"username"`
	// bcrypt digest. Never serialized.
	Password string `gorm:"not null" json:"-"`
}
