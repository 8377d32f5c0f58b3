package handler

// Response is the JSON body of the form endpoints.
type Response struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK is the body of a successful submission.
func OK() Response {
	ok := true

	return Response{Success: &ok}
}

// Invalid is the body of a rejected submission.
func Invalid(msg string) Response {
	return Response{Error: msg}
}

// Failed is the body of a submission the store could not save.
func Failed(msg string) Response {
	ok := false

	return Response{Success: &ok, Error: msg}
}
