package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int    `json:"length"`
	Lowercase *bool  `json:"lowercase"`
	Uppercase *bool  `json:"uppercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
	Custom    string `json:"custom_charset,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// KeyRequest represents a hex key generation request. A zero length
// uses the generator's default key length.
type KeyRequest struct {
	Length int `json:"length"`
}

// KeyResponse represents a hex key generation response.
type KeyResponse struct {
	Key    string `json:"key"`
	Length int    `json:"length"`
}
