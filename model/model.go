package model

// NoteSpec is the JSON shape of a single buzzer note.
type NoteSpec struct {
	Frequency uint16 `json:"frequency"`
	Offset    uint32 `json:"offset"`
	Duration  uint16 `json:"duration"`
}

type RenderRequestBody struct {
	Notes []NoteSpec `json:"notes"`
}

type RenderResponse struct {
	Id string `json:"id"`
}

type SourceRequestBody struct {
	Notes []NoteSpec `json:"notes"`
	Name  string     `json:"name"`
	Lang  string     `json:"lang"`
}

type MelodyMetadata struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Year   uint   `json:"year"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
