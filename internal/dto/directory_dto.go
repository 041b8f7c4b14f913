package dto

type GroupSummary struct {
	Id               string `json:"id"`
	Name             string `json:"name"`
	ParticipantCount int    `json:"participantCount"`
}

type Participant struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Number        string `json:"number"`
	ProfilePicUrl string `json:"profilePicUrl,omitempty"`
}

// HasPhoto reports whether the participant can appear on a flashcard.
func (p Participant) HasPhoto() bool {
	return p.ProfilePicUrl != ""
}
