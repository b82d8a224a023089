package db_models

type Penduduk struct {
	BaseModel
	Nik         string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Nama        string `gorm:"type:varchar(255);not null"`
	Umur        int    `gorm:"not null;check:chk_penduduks_umur,umur >= 0"`
	Alamat      string `gorm:"type:text;not null"`
	ProvinsiID  uint   `gorm:"not null;index"`
	KabupatenID uint   `gorm:"not null;index"`

	Provinsi  *Provinsi  `gorm:"foreignKey:ProvinsiID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Kabupaten *Kabupaten `gorm:"foreignKey:KabupatenID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Penduduk) TableName() string { return "penduduks" }
