package model

type TuneMetadata struct {
	Title  string `json:"title"`
	Origin string `json:"origin"`
	Rhythm string `json:"rhythm"`
	Year   uint   `json:"year,omitempty"`
}

type TuneResponse struct {
	Name     string        `json:"name"`
	Notation string        `json:"notation"`
	Metadata *TuneMetadata `json:"metadata"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
