package dto

type SetWeightsRequest struct {
	Weights map[string]float64 `json:"weights" binding:"required"`
}

type WeightsResponse struct {
	CompanyID int64              `json:"company_id,string"`
	Weights   map[string]float64 `json:"weights"`
	Override  bool               `json:"override"`
}
