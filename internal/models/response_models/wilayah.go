package response_models

type ProvinsiResponse struct {
	ID        uint   `json:"id"`
	Nama      string `json:"nama"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type KabupatenResponse struct {
	ID             uint              `json:"id"`
	Nama           string            `json:"nama"`
	ProvinsiID     uint              `json:"provinsi_id"`
	JumlahPenduduk int64             `json:"jumlah_penduduk"`
	Provinsi       *ProvinsiResponse `json:"provinsi,omitempty"`
	CreatedAt      string            `json:"created_at,omitempty"`
	UpdatedAt      string            `json:"updated_at,omitempty"`
}

type PendudukResponse struct {
	ID          uint               `json:"id"`
	Nama        string             `json:"nama"`
	Nik         string             `json:"nik"`
	Umur        int                `json:"umur"`
	Alamat      string             `json:"alamat"`
	ProvinsiID  uint               `json:"provinsi_id"`
	KabupatenID uint               `json:"kabupaten_id"`
	Provinsi    *ProvinsiResponse  `json:"provinsi,omitempty"`
	Kabupaten   *KabupatenResponse `json:"kabupaten,omitempty"`
	CreatedAt   string             `json:"created_at,omitempty"`
	UpdatedAt   string             `json:"updated_at,omitempty"`
}
