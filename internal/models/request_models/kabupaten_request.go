package request_models

type KabupatenRequest struct {
	Nama       string `form:"nama" json:"nama" binding:"required,max=255"`
	ProvinsiID uint   `form:"provinsi_id" json:"provinsi_id" binding:"required"`
	// Omitted means 0.
	JumlahPenduduk *int64 `form:"jumlah_penduduk" json:"jumlah_penduduk" binding:"omitempty,min=0"`
}
