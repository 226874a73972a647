package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length      int   `json:"length"`
	Lowercase   *bool `json:"lowercase"`
	Uppercase   *bool `json:"uppercase"`
	Digits      *bool `json:"digits"`
	Symbols     *bool `json:"symbols"`
	IncludeHash bool  `json:"include_hash,omitempty"`
}

// GenerateResponse represents a single generated password together with its
// strength report and, when requested, a bcrypt hash of the password.
type GenerateResponse struct {
	Password string         `json:"password"`
	Length   int            `json:"length"`
	Strength StrengthReport `json:"strength"`
	Hash     string         `json:"hash,omitempty"`
}

// BatchRequest represents a request for several passwords generated with the
// same configuration.
type BatchRequest struct {
	Count int `json:"count"`
	GenerateRequest
}

// BatchResponse represents an ordered batch of independently generated passwords.
type BatchResponse struct {
	Count     int                `json:"count"`
	Passwords []GenerateResponse `json:"passwords"`
}

// StrengthRequest represents a strength check of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthReport describes which character classes a password contains.
// Field names follow the classic generator output: score, strength, length
// and one has_* flag per class.
type StrengthReport struct {
	Score        int    `json:"score"`
	Strength     string `json:"strength"`
	Length       int    `json:"length"`
	HasLowercase bool   `json:"has_lowercase"`
	HasUppercase bool   `json:"has_uppercase"`
	HasDigits    bool   `json:"has_digits"`
	HasSymbols   bool   `json:"has_symbols"`
}
