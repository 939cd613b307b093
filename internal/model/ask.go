package model

// AskRequest - incident question payload
type AskRequest struct {
	UserQuestion string `json:"user_question"`
}

// AskResponse - model answer payload
type AskResponse struct {
	Response string `json:"response"`
}
