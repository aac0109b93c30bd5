package models

// Student account. New registrations start as PENDING and can only log in
// once an admin approves them.
type Student struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Email        string        `gorm:"uniqueIndex;not null"`
	PasswordHash string        `gorm:"not null"`
	Role         string        `gorm:"type:varchar(20)"`
	Status       AccountStatus `gorm:"type:varchar(20)"`
}

// PrAdmin is an event-organizer account created by the main admin.
type PrAdmin struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20)"`
}
