package db_models

type Account struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(32);not null;default:'user'"`
}
