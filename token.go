package marquee

// Tokenizer splits message text into plain-text and emote-reference
// tokens. A single Parse call yields a finite token sequence.
type Tokenizer interface {
	Parse(text string) []Token
}

// Token is a sealed interface over the tokenizer's output.
// The unexported marker method prevents external implementations.
type Token interface {
	token()
}

// TextToken is a run of plain text.
type TextToken struct {
	Text string
}

func (TextToken) token() {}

// EmoteToken references a recognized emote.
type EmoteToken struct {
	Emote *Emote
}

func (EmoteToken) token() {}

// Interface compliance checks.
var (
	_ Token = TextToken{}
	_ Token = EmoteToken{}
)

// plainTokenizer treats everything as text. Used when no tokenizer is
// configured on a container.
type plainTokenizer struct{}

func (plainTokenizer) Parse(text string) []Token {
	if text == "" {
		return nil
	}
	return []Token{TextToken{Text: text}}
}
