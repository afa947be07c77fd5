package request

type PostMessageRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}
