package domain

// Question is one multiple-choice item produced by the model.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// HasCorrectOption reports whether CorrectAnswer is one of Options verbatim.
func (q Question) HasCorrectOption() bool {
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return true
		}
	}
	return false
}

// Quiz keeps questions in the order the model generated them.
type Quiz struct {
	Questions []Question `json:"questions"`
}
