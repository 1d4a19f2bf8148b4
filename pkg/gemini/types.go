package gemini

// GenerateRequest is the top-level request body for the Gemini API.
// Persona framing travels inside Contents as an ordinary user/model exchange,
// so the request needs no field beyond the conversation itself.
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"` // "user" or "model" for multi-turn conversations
	Parts []Part `json:"parts"`
}

// Part holds a text segment of a content message.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerateResponse is the top-level response body from the Gemini API.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}
