package opentdb

// TokenResponse is the reply of the session token endpoint.
type TokenResponse struct {
	ResponseCode    int    `json:"response_code"`
	ResponseMessage string `json:"response_message"`
	Token           string `json:"token"`
}

// QuestionsResponse is the reply of the questions endpoint.
type QuestionsResponse struct {
	ResponseCode int      `json:"response_code"`
	Results      []Result `json:"results"`
}

// Result is one raw question as sent by the service. Text fields are HTML
// entity encoded.
type Result struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// QuestionsRequest parameterizes the questions endpoint.
type QuestionsRequest struct {
	Amount   int
	Type     string
	Category int
	Token    string
}
