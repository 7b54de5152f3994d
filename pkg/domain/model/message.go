package model

// Field is a labeled key/value entry rendered inside an Embed
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedAuthor identifies the acting user of an event
type EmbedAuthor struct {
	Name string `json:"name"`
}

// Embed is the structured block inside a Message. Fields is omitted from
// the serialized form entirely when empty.
type Embed struct {
	Author      EmbedAuthor `json:"author"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Description string      `json:"description"`
	Fields      []Field     `json:"fields,omitempty"`
}

// Message is the canonical chat-notification document posted to the
// Discord webhook endpoint. Every transformation produces exactly one Embed.
type Message struct {
	Username string  `json:"username"`
	Content  string  `json:"content"`
	Embeds   []Embed `json:"embeds"`
}

// EmbedSource is the capability set a transformer variant extracts from an
// inbound event: title, title link, acting user, body text, and extra fields.
type EmbedSource struct {
	AuthorName  string
	Title       string
	TitleURL    string
	Description string
	Fields      []Field
}

// NewMessage assembles the canonical message from a variant's extracted
// values. Fields with an empty value never appear in the output, and a
// fields sequence that ends up empty is dropped rather than serialized as
// an empty list.
func NewMessage(username, content string, src EmbedSource) *Message {
	embed := Embed{
		Author: EmbedAuthor{
			Name: src.AuthorName,
		},
		Title:       src.Title,
		URL:         src.TitleURL,
		Description: src.Description,
	}

	var fields []Field
	for _, f := range src.Fields {
		if f.Value == "" {
			continue
		}
		fields = append(fields, f)
	}
	if len(fields) > 0 {
		embed.Fields = fields
	}

	return &Message{
		Username: username,
		Content:  content,
		Embeds:   []Embed{embed},
	}
}
