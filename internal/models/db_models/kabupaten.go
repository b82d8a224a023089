package db_models

type Kabupaten struct {
	BaseModel
	Nama           string `gorm:"type:varchar(255);not null"`
	ProvinsiID     uint   `gorm:"not null;index"`
	JumlahPenduduk int64  `gorm:"not null;default:0;check:chk_kabupatens_jumlah_penduduk,jumlah_penduduk >= 0"`

	Provinsi *Provinsi `gorm:"foreignKey:ProvinsiID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Kabupaten) TableName() string { return "kabupatens" }
