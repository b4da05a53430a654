package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfloor-dev/parrot-go/openfloor"
)

func TestAddressedToMe(t *testing.T) {
	b := NewBaseAgent(Identity{
		SpeakerUri: "tag:openfloor.dev,2025:me",
		ServiceUrl: "http://me.example.com",
	}, Options{Name: "Me"})

	tests := []struct {
		name string
		to   *openfloor.To
		want bool
	}{
		{"nil to is broadcast", nil, true},
		{"speakerUri match", &openfloor.To{SpeakerUri: "tag:openfloor.dev,2025:me"}, true},
		{"serviceUrl match", &openfloor.To{ServiceUrl: "http://me.example.com"}, true},
		{"speakerUri mismatch", &openfloor.To{SpeakerUri: "tag:openfloor.dev,2025:you"}, false},
		{"serviceUrl mismatch", &openfloor.To{ServiceUrl: "http://you.example.com"}, false},
		{"mismatching speaker with matching service", &openfloor.To{
			SpeakerUri: "tag:openfloor.dev,2025:you",
			ServiceUrl: "http://me.example.com",
		}, true},
		{"empty to block", &openfloor.To{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.AddressedToMe(tt.to))
		})
	}
}

func TestNewBaseAgentBuildsManifestOnce(t *testing.T) {
	b := NewBaseAgent(Identity{SpeakerUri: "tag:a", ServiceUrl: "http://a"}, Options{
		Name:         "Tester",
		Organization: "Example Org",
		Synopsis:     "tests things",
		Keyphrases:   []string{"test"},
		Descriptions: []string{"a test agent"},
	})

	m := b.Manifest()
	assert.Equal(t, "tag:a", m.Identification.SpeakerUri)
	assert.Equal(t, "http://a", m.Identification.ServiceUrl)
	assert.Equal(t, "Tester", m.Identification.ConversationalName)
	assert.Equal(t, "Example Org", m.Identification.Organization)
	assert.Equal(t, []string{"test"}, m.Capabilities[0].Keyphrases)

	// Manifest is immutable: repeated reads see the same value.
	assert.Equal(t, m, b.Manifest())
}
