package types

// ApiResponse is the standard JSON envelope for every handler response.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
}

// ValidationResponse carries per-field messages for rejected submissions.
type ValidationResponse struct {
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Errors  map[string]string `json:"errors"`
}
