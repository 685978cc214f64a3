// Package resultapi exposes the result endpoint the grid client submits to.
package resultapi

// SubmitRequest is the body of POST /result.
type SubmitRequest struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Steps int    `json:"steps"`
	Email string `json:"email"`
}

// MessageResponse carries the text shown to the player, for success and failure alike.
type MessageResponse struct {
	Message string `json:"message"`
}
