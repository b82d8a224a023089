package request_models

type ProvinsiRequest struct {
	Nama string `form:"nama" json:"nama" binding:"required,max=255"`
}
