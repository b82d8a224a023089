package response_models

type KPIBlock struct {
	TotalProvinsi  int64 `json:"total_provinsi"`
	TotalKabupaten int64 `json:"total_kabupaten"`
	TotalPenduduk  int64 `json:"total_penduduk"`
	// Sum of kabupaten.jumlah_penduduk (census figure, not registered residents)
	TotalJumlahPenduduk int64 `json:"total_jumlah_penduduk"`
}

type ProvinsiSummary struct {
	ProvinsiID        uint   `json:"provinsi_id"`
	Nama              string `json:"nama"`
	KabupatenCount    int64  `json:"kabupaten_count"`
	JumlahPenduduk    int64  `json:"jumlah_penduduk"`
	PendudukTerdaftar int64  `json:"penduduk_terdaftar"`
}

type DashboardReport struct {
	KPIs        KPIBlock            `json:"kpis"`
	PerProvinsi []ProvinsiSummary   `json:"per_provinsi"`
	Provinsis   []ProvinsiResponse  `json:"provinsis"`
	Kabupatens  []KabupatenResponse `json:"kabupatens"`
	Penduduks   []PendudukResponse  `json:"penduduks"`
}
