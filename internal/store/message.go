package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind is the closed set of message types.
type Kind string

const (
	KindText     Kind = "text"
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindVoice    Kind = "voice"
	KindDocument Kind = "document"
)

// Message is one immutable entry of a conversation log.
type Message struct {
	ID         string
	SenderID   string
	SenderName string
	Timestamp  time.Time
	Content    Content
}

// Kind returns the message type, or "" when Content is unset.
func (m Message) Kind() Kind {
	if m.Content == nil {
		return ""
	}
	return m.Content.Kind()
}

// Content is the kind-specific payload of a message. The set of
// implementations is closed: Text, Media, Voice and Document.
type Content interface {
	Kind() Kind
	isContent()
}

// Text is a plain text message.
type Text struct {
	Body string
}

// Attachment references a file carried by a message.
type Attachment struct {
	URI  string
	Name string
	Size string // human-readable, e.g. "1.20 MB"
}

// Media is an image, video or audio message with an optional caption.
type Media struct {
	Of      Kind
	Caption string
	File    Attachment
}

// Voice is a recorded voice message.
type Voice struct {
	Caption  string
	File     Attachment
	Seconds  float64
	Waveform []float64
}

// Document is an arbitrary file.
type Document struct {
	Caption string
	File    Attachment
}

func (Text) Kind() Kind     { return KindText }
func (m Media) Kind() Kind  { return m.Of }
func (Voice) Kind() Kind    { return KindVoice }
func (Document) Kind() Kind { return KindDocument }

func (Text) isContent()     {}
func (Media) isContent()    {}
func (Voice) isContent()    {}
func (Document) isContent() {}

// wireMessage is the flat persisted layout shared by every kind.
type wireMessage struct {
	ID            string    `json:"id"`
	SenderID      string    `json:"senderId"`
	SenderName    string    `json:"senderName,omitempty"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	Type          Kind      `json:"type"`
	File          string    `json:"file,omitempty"`
	FileName      string    `json:"fileName,omitempty"`
	FileSize      string    `json:"fileSize,omitempty"`
	VoiceDuration float64   `json:"voiceDuration,omitempty"`
	WaveformData  []float64 `json:"waveformData,omitempty"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	w := wireMessage{
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Timestamp:  m.Timestamp,
	}
	switch c := m.Content.(type) {
	case Text:
		w.Type = KindText
		w.Content = c.Body
	case Media:
		if !isMediaKind(c.Of) {
			return nil, fmt.Errorf("media message with kind %q", c.Of)
		}
		w.Type = c.Of
		w.Content = c.Caption
		w.File, w.FileName, w.FileSize = c.File.URI, c.File.Name, c.File.Size
	case Voice:
		w.Type = KindVoice
		w.Content = c.Caption
		w.File, w.FileName, w.FileSize = c.File.URI, c.File.Name, c.File.Size
		w.VoiceDuration = c.Seconds
		w.WaveformData = c.Waveform
	case Document:
		w.Type = KindDocument
		w.Content = c.Caption
		w.File, w.FileName, w.FileSize = c.File.URI, c.File.Name, c.File.Size
	default:
		return nil, fmt.Errorf("message %q has no content", m.ID)
	}
	return json.Marshal(w)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	file := Attachment{URI: w.File, Name: w.FileName, Size: w.FileSize}

	var c Content
	switch w.Type {
	case KindText:
		c = Text{Body: w.Content}
	case KindImage, KindVideo, KindAudio:
		c = Media{Of: w.Type, Caption: w.Content, File: file}
	case KindVoice:
		c = Voice{Caption: w.Content, File: file, Seconds: w.VoiceDuration, Waveform: w.WaveformData}
	case KindDocument:
		c = Document{Caption: w.Content, File: file}
	default:
		return fmt.Errorf("unknown message type %q", w.Type)
	}

	*m = Message{
		ID:         w.ID,
		SenderID:   w.SenderID,
		SenderName: w.SenderName,
		Timestamp:  w.Timestamp,
		Content:    c,
	}
	return nil
}

func isMediaKind(k Kind) bool {
	return k == KindImage || k == KindVideo || k == KindAudio
}

// ParseKind validates a message type name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindText, KindImage, KindVideo, KindAudio, KindVoice, KindDocument:
		return k, nil
	}
	return "", fmt.Errorf("%w: message type %q", ErrInvalidInput, s)
}
