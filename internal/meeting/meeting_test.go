package meeting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewURLUsesDomainAndSlug(t *testing.T) {
	url := NewURL("meet.exemplo.com.br", "Boa-Vista")

	assert.True(t, strings.HasPrefix(url, "https://meet.exemplo.com.br/boa-vista-"))
	// sufixo aleatório presente
	assert.Greater(t, len(url), len("https://meet.exemplo.com.br/boa-vista-"))
}

func TestNewURLDefaults(t *testing.T) {
	url := NewURL("", "")
	assert.True(t, strings.HasPrefix(url, "https://"+DefaultDomain+"/sala-"))
}

func TestNewURLIsUnique(t *testing.T) {
	assert.NotEqual(t, NewURL("", "clinica"), NewURL("", "clinica"))
}

func TestRoomNameExtractsLastSegment(t *testing.T) {
	assert.Equal(t, "clinica-abc", RoomName("https://meet.jit.si/clinica-abc"))
	assert.Equal(t, "sala-9", RoomName("https://video.exemplo.com/salas/sala-9"))
}

func TestRoomNameToleratesGarbage(t *testing.T) {
	assert.Equal(t, "", RoomName(""))
	assert.Equal(t, "", RoomName("https://meet.jit.si"))
	assert.Equal(t, "", RoomName("https://meet.jit.si/"))
	assert.Equal(t, "", RoomName("::not a url::"))
}
