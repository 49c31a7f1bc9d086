package domain

// Mapeamento de "customEvent:cta_name" -> rótulo exibido no dashboard.
// Valores fora desta tabela são ignorados na montagem do breakdown.
var CTALabelByEventValue = map[string]string{
	"release_spotify_click": "Spotify",
	"release_apple_click":   "Apple Music",
	"quick_book_click":      "Novela",
	"quick_instagram_click": "Instagram",
	"quick_gift_click":      "Regalo",
	"quick_music_click":     "Música",
}

// TrackedKeyEvents são os eventos nomeados incluídos no relatório de
// key events (filtro in-list na API).
var TrackedKeyEvents = []string{
	"cta_click",
	"video_play",
	"video_complete",
	"scroll_depth",
	"engaged_time",
}

// CTABreakdown é a seção opcional do documento. Quando a dimensão
// customizada não existe na propriedade (ou a consulta falha), Available
// fica falso e Counts permanece com as seis chaves zeradas.
type CTABreakdown struct {
	Available bool
	Counts    map[string]int
}

// NewCTABreakdown cria o breakdown padrão: seis chaves fixas, todas em zero.
func NewCTABreakdown() *CTABreakdown {
	counts := make(map[string]int, len(CTALabelByEventValue))
	for _, label := range CTALabelByEventValue {
		counts[label] = 0
	}

	return &CTABreakdown{
		Available: false,
		Counts:    counts,
	}
}

// Set registra a contagem de um valor vindo da dimensão customizada.
// Valores desconhecidos são descartados.
func (b *CTABreakdown) Set(eventValue string, count int) {
	label, ok := CTALabelByEventValue[eventValue]
	if !ok {
		return
	}
	b.Counts[label] = count
}

// Total soma todas as contagens do breakdown.
func (b *CTABreakdown) Total() int {
	total := 0
	for _, count := range b.Counts {
		total += count
	}
	return total
}
