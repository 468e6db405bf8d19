package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Placeholder valor de presentación para referencias que ya no resuelven
// (lote o cliente borrado). El render es tolerante: nunca falla por un
// foreign key roto, muestra "-".
const Placeholder = "-"
