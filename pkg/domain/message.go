package domain

// Message is a rendered notification, independent of the chat platform
type Message struct {
	Content string `json:"content,omitempty"`
	Embed   *Embed `json:"embed,omitempty"`
	Mention bool   `json:"mention,omitempty"` // notifier prefixes configured user mention
}

// Embed is a rich card attached to a message
type Embed struct {
	Title       string       `json:"title"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      string       `json:"footer,omitempty"`
}

// EmbedField is a name/value pair shown in an embed
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// ItemEmbed renders an article card the way digests and fetch-now show it
func ItemEmbed(item Item) *Embed {
	e := &Embed{
		Title:       item.Title,
		URL:         item.Link,
		Description: item.Description,
		Color:       item.Source.Color(),
		Footer:      "Source: " + item.Source.Name(),
	}
	if item.Source == SourceDarknetDiaries {
		e.Title = "🎙️ " + item.Title
		e.Footer = "Darknet Diaries by Jack Rhysider"
		if item.Date != "" {
			e.Fields = append(e.Fields, EmbedField{Name: "Released", Value: item.Date, Inline: true})
		}
	}
	return e
}

// NewEpisodeEmbed renders the alert card for a newly released episode
func NewEpisodeEmbed(item Item) *Embed {
	e := &Embed{
		Title:       "NEW DARKNET DIARIES EPISODE!",
		URL:         item.Link,
		Description: "**" + item.Title + "**",
		Color:       0xFF0000,
		Fields:      []EmbedField{{Name: "Description", Value: item.Description}},
		Footer:      "Darknet Diaries by Jack Rhysider",
	}
	if item.Date != "" {
		e.Fields = append(e.Fields, EmbedField{Name: "Released", Value: item.Date, Inline: true})
	}
	return e
}
