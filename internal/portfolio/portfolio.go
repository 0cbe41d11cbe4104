// Package portfolio defines the profile content and the domain types shared by
// the terminal and its collaborators. It has zero external dependencies.
package portfolio

// ContactMessage is what the contact wizard collects.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Track is one recently played song.
type Track struct {
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	AlbumArt string `json:"albumArt"`
	URL      string `json:"spotifyUrl"`
	PlayedAt string `json:"playedAt"`
}

type Link struct {
	Label string
	URL   string
}

type Project struct {
	Name        string
	Description string
	Stack       []string
	Repo        string
	Demo        string
}

type Job struct {
	Role    string
	Company string
	Period  string
	Points  []string
}

type SkillGroup struct {
	Name   string
	Skills []string
}

// Profile is everything the static commands print.
type Profile struct {
	Name      string
	Handle    string
	Headline  string
	Location  string
	About     []string
	Facts     []Link
	Skills    []SkillGroup
	Jobs      []Job
	Projects  []Project
	Social    []Link
	ResumeURL string
	Email     string
}
