package dto

type CreateOrderInput struct {
	// Token is the single-use payment source issued by the gateway's
	// client-side tokenizer.
	Token string `json:"token" binding:"required"`
}
