package api

// Wire types mirror the backend's JSON contract. Field names follow the
// server's snake_case payloads exactly.

// SessionInfo is the response to POST /sessions.
type SessionInfo struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	CreatedAt string `json:"created_at"`
	Message   string `json:"message,omitempty"`
}

// GenerateRequest is the body of POST /code/generate. Framework marshals as
// null when absent.
type GenerateRequest struct {
	Description string  `json:"description"`
	Language    string  `json:"language"`
	Framework   *string `json:"framework"`
}

// GenerateResponse is the success payload of POST /code/generate.
type GenerateResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	Code          string   `json:"code"`
	Description   string   `json:"description"`
	Filename      string   `json:"filename"`
	FilePath      string   `json:"file_path,omitempty"`
	Dependencies  []string `json:"dependencies"`
	ExecutionTime float64  `json:"execution_time"`
}

// HealthInfo is the payload of GET /health at the server root.
type HealthInfo struct {
	Status          string   `json:"status"`
	OllamaStatus    string   `json:"ollama_status"`
	AvailableModels []string `json:"available_models"`
}

// FileInfo describes one generated file on the server.
type FileInfo struct {
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	Created   string `json:"created"`
	Modified  string `json:"modified"`
	Extension string `json:"extension"`
}

// FileList is the payload of GET /code/files.
type FileList struct {
	Files      []FileInfo `json:"files"`
	TotalCount int        `json:"total_count"`
}

type errorBody struct {
	Detail string `json:"detail"`
}
