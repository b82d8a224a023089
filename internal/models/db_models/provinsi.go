package db_models

type Provinsi struct {
	BaseModel
	Nama string `gorm:"type:varchar(255);not null"`
}

func (Provinsi) TableName() string { return "provinsis" }
