package llm

// generateRequest is what the client app sends to POST /lessons/generate.
type generateRequest struct {
	Prompt string `json:"prompt"`
}

// generateResponse carries the answer text exactly as the backend returned it.
type generateResponse struct {
	Answer string `json:"answer"`
}

// errorResponse describes a failed generation. UpstreamStatus is only set
// when the vendor answered with a non-2xx status.
type errorResponse struct {
	Error          string `json:"error"`
	Kind           string `json:"kind"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}
