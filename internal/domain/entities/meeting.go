package entities

// Sentence is a single utterance from the remote transcript source
type Sentence struct {
	RawText     string `json:"raw_text"`
	SpeakerName string `json:"speaker_name"`
	SpeakerID   int    `json:"speaker_id"`
}

// Meeting is a transcript record as returned by the transcript source.
// It is remote-owned: this system never mutates or deletes it.
type Meeting struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	DateString    string     `json:"dateString"`
	TranscriptURL string     `json:"transcript_url"`
	AudioURL      string     `json:"audio_url"`
	VideoURL      string     `json:"video_url"`
	Sentences     []Sentence `json:"sentences"`
}
