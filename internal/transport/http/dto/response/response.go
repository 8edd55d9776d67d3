package response

// Message and Error are the only two body envelopes the API uses;
// field names are part of the wire contract.
type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Error string `json:"error"`
}

type LoginUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Photo string `json:"photo"`
}

type LoginResponse struct {
	User LoginUser `json:"user"`
}

type ProfileResponse struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Photo   string  `json:"photo"`
	Wallet  float64 `json:"wallet"`
}

type AdviceResponse struct {
	Message string `json:"message"`
}

type QuizResponse struct {
	Result string `json:"result"`
}

type StyleMatchResponse struct {
	Suggestion string `json:"suggestion"`
}
