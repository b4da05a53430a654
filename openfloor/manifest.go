package openfloor

// Identification names an agent for discovery: who it is, who runs it and
// how to address it.
type Identification struct {
	SpeakerUri         string `json:"speakerUri"`
	ServiceUrl         string `json:"serviceUrl,omitempty"`
	Organization       string `json:"organization,omitempty"`
	ConversationalName string `json:"conversationalName,omitempty"`
	Department         string `json:"department,omitempty"`
	Role               string `json:"role,omitempty"`
	Synopsis           string `json:"synopsis,omitempty"`
}

// Capability describes one thing an agent can do, as keyphrases for routing
// and free-text descriptions for humans and planners.
type Capability struct {
	Keyphrases   []string `json:"keyphrases,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

// Manifest is the machine-readable self-description an agent publishes in
// response to a getManifests event. Built once at agent construction and
// reused across requests.
type Manifest struct {
	Identification Identification `json:"identification"`
	Capabilities   []Capability   `json:"capabilities"`
}
