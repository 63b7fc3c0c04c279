package handler

// Handler hosts the endpoints that belong to no domain area.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}
