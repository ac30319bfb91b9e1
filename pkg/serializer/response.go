package serializer

// Response base serializer for every API reply.
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// NewResponseWithData wraps payload data into a successful response.
func NewResponseWithData(data interface{}) Response {
	return Response{
		Data: data,
	}
}

// CheckLogin returns the canonical "login required" response.
func CheckLogin() Response {
	return Response{
		Code: CodeCheckLogin,
		Msg:  "Login required",
	}
}
