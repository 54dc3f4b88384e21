package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Estados de un comando de mutación (reemplazo estructurado del "optimistic
// update" sin rollback: la mutación solo se persiste al confirmarse).
const (
	CommandPending   = "pending"
	CommandCommitted = "committed"
	CommandRejected  = "rejected"
)
