package meeting

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// URL de reunião é um dado opaco gravado no agendamento: o sistema
// só gera, guarda e extrai o nome da sala para exibição. O transporte
// de vídeo em si fica por conta do widget embutido no front.

const DefaultDomain = "meet.jit.si"

// NewURL gera um link de sala estável para um atendimento online.
// O sufixo aleatório impede adivinhação do link.
func NewURL(domain, clinicSlug string) string {
	if domain == "" {
		domain = DefaultDomain
	}

	slug := strings.Trim(strings.ToLower(clinicSlug), "-")
	if slug == "" {
		slug = "sala"
	}

	return fmt.Sprintf("https://%s/%s-%s", domain, slug, uuid.NewString())
}

// RoomName extrai o último segmento do path para exibição
// (ex.: https://meet.jit.si/clinica-abc -> clinica-abc).
// URL inválida ou sem path devolve "".
func RoomName(meetingURL string) string {
	if meetingURL == "" {
		return ""
	}

	u, err := url.Parse(meetingURL)
	if err != nil {
		return ""
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return ""
	}

	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}
