package request

type QuizRequest struct {
	Answers []int `json:"answers"`
}

type StyleMatchRequest struct {
	OutfitType string `json:"outfit_type"`
}
