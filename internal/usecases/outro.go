package usecases

import (
	"math/rand"
	"sync"
	"time"

	"video-guestbook/internal/domain/entities"
)

// Static guest-flow content. The outro carousel, the inspiration questions
// on the guide step and the rotating note suggestion on the preview step.

var OutroSlides = []entities.OutroSlide{
	{
		ID:          "flight",
		Title:       "Quer dar uma olhadinha onde tudo vai acontecer?",
		Description: "Um spoilerzinho...",
		PhotoLabel:  "Nós no avião",
		Path:        "/assets/aviao.jpeg",
	},
	{
		ID:          "venue-tease-1",
		Title:       "Um lugar especial esperando",
		Description: "Um pedacinho do cenário que vai guardar esse momento importante.",
		PhotoLabel:  "Spoiler do lugar",
		Path:        "/assets/spoiler-1.jpeg",
	},
	{
		ID:          "venue-tease-2",
		Title:       "Obrigado por fazer parte desse momento",
		Description: "Seu vídeo será visto apenas no momento certo. Obrigado por guardar esse carinho com a gente.",
		PhotoLabel:  "Outro spoiler do lugar",
		Path:        "/assets/spoiler-2.jpeg",
	},
}

var GuideQuestions = []string{
	"O que faz esse casal combinar tanto?",
	"Que conselho você daria pra essa nova fase?",
	"Qual lembrança mais bonita você tem com eles?",
	"O que você deseja pra esse futuro juntos?",
	"Se pudesse resumir eles em uma palavra, qual seria?",
	"O que você mais admira nessa relação?",
	"Qual momento deles te marcou mais?",
	"Que mensagem você deixaria pra eles verem no futuro?",
	"O que não pode faltar em um relacionamento como esse?",
	"Por que você acredita que eles formam um ótimo casal?",
}

var NoteSuggestions = []string{
	"Vocês são incríveis juntos",
	"Isso vai marcar uma nova fase",
	"Desejo toda a felicidade do mundo",
}

func RandomQuestion() string {
	return GuideQuestions[rand.Intn(len(GuideQuestions))]
}

// AnotherQuestion picks a question different from current, giving up after
// five draws so a single-entry list can't loop forever.
func AnotherQuestion(current string) string {
	next := current
	for i := 0; i < 5; i++ {
		candidate := GuideQuestions[rand.Intn(len(GuideQuestions))]
		if candidate != current {
			next = candidate
			break
		}
	}
	return next
}

// SuggestionRotator cycles through the note suggestions on its own ticker.
// Stop must be called when the owning view goes away.
type SuggestionRotator struct {
	mu    sync.Mutex
	index int
	stop  chan struct{}
	once  sync.Once
}

func NewSuggestionRotator(interval time.Duration) *SuggestionRotator {
	r := &SuggestionRotator{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.advance()
			case <-r.stop:
				return
			}
		}
	}()
	return r
}

func (r *SuggestionRotator) advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % len(NoteSuggestions)
}

func (r *SuggestionRotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return NoteSuggestions[r.index]
}

func (r *SuggestionRotator) Stop() {
	r.once.Do(func() { close(r.stop) })
}
