package request_models

type PendudukRequest struct {
	Nama        string `form:"nama" json:"nama" binding:"required,max=255"`
	Nik         string `form:"nik" json:"nik" binding:"required,max=20"`
	Umur        *int   `form:"umur" json:"umur" binding:"required,min=0"`
	Alamat      string `form:"alamat" json:"alamat" binding:"required"`
	ProvinsiID  uint   `form:"provinsi_id" json:"provinsi_id" binding:"required"`
	KabupatenID uint   `form:"kabupaten_id" json:"kabupaten_id" binding:"required"`
}
