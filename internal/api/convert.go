package api

import (
	"fmt"
	"time"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/chat"
	"github.com/matheus3301/chatzy/internal/contacts"
	"github.com/matheus3301/chatzy/internal/store"
)

// unixMs is 0 for the zero time so "never" survives the round trip.
func unixMs(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func userToProto(u *store.User) *chatzyv1.User {
	if u == nil {
		return nil
	}
	return &chatzyv1.User{
		Id:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Avatar:         u.Avatar,
		IsOnline:       u.IsOnline,
		LastSeenUnixMs: unixMs(u.LastSeen),
		Bio:            u.Bio,
	}
}

func contactToProto(c contacts.Contact) *chatzyv1.Contact {
	return &chatzyv1.Contact{
		Id:             c.ID,
		Name:           c.Name,
		Avatar:         c.Avatar,
		LastMessage:    c.LastMessage,
		Timestamp:      c.Timestamp,
		UnreadCount:    int32(c.UnreadCount),
		IsOnline:       c.IsOnline,
		Status:         c.Status,
		LastSeenUnixMs: unixMs(c.LastSeen),
		IsGroup:        c.IsGroup,
		Members:        c.Members,
	}
}

func messageToProto(m store.Message, isOwn bool) *chatzyv1.Message {
	pb := &chatzyv1.Message{
		Id:              m.ID,
		SenderId:        m.SenderID,
		SenderName:      m.SenderName,
		Type:            string(m.Kind()),
		TimestampUnixMs: unixMs(m.Timestamp),
		IsOwn:           isOwn,
	}
	setFile := func(a store.Attachment) {
		pb.File, pb.FileName, pb.FileSize = a.URI, a.Name, a.Size
	}
	switch c := m.Content.(type) {
	case store.Text:
		pb.Content = c.Body
	case store.Media:
		pb.Content = c.Caption
		setFile(c.File)
	case store.Voice:
		pb.Content = c.Caption
		pb.VoiceDuration = c.Seconds
		pb.WaveformData = c.Waveform
		setFile(c.File)
	case store.Document:
		pb.Content = c.Caption
		setFile(c.File)
	}
	return pb
}

func viewMessageToProto(vm chat.ViewMessage) *chatzyv1.Message {
	return messageToProto(vm.Message, vm.IsOwn)
}

func callToProto(r store.CallRecord) *chatzyv1.CallRecord {
	return &chatzyv1.CallRecord{
		Id:              r.ID,
		ContactId:       r.ContactID,
		ContactName:     r.ContactName,
		ContactAvatar:   r.ContactAvatar,
		Type:            string(r.Type),
		Duration:        int32(r.Duration),
		TimestampUnixMs: unixMs(r.Timestamp),
		Status:          string(r.Status),
	}
}

func groupToProto(g store.GroupChat) *chatzyv1.Group {
	return &chatzyv1.Group{
		Id:              g.ID,
		Name:            g.Name,
		Description:     g.Description,
		Avatar:          g.Avatar,
		Members:         g.Members,
		Admins:          g.Admins,
		CreatedBy:       g.CreatedBy,
		CreatedAtUnixMs: unixMs(g.CreatedAt),
	}
}

// messageContent builds message content from the flat request layout. An
// empty type means text.
func messageContent(req *chatzyv1.SendMessageRequest) (store.Content, error) {
	kind := store.KindText
	if req.GetType() != "" {
		k, err := store.ParseKind(req.GetType())
		if err != nil {
			return nil, err
		}
		kind = k
	}
	file := store.Attachment{URI: req.GetFile(), Name: req.GetFileName(), Size: req.GetFileSize()}
	switch kind {
	case store.KindText:
		return store.Text{Body: req.GetContent()}, nil
	case store.KindVoice:
		return store.Voice{Caption: req.GetContent(), File: file, Seconds: req.GetVoiceDuration(), Waveform: req.GetWaveformData()}, nil
	case store.KindDocument:
		return store.Document{Caption: req.GetContent(), File: file}, nil
	default:
		return store.Media{Of: kind, Caption: req.GetContent(), File: file}, nil
	}
}

// profileUpdate applies only the attributes named in req.Fields.
func profileUpdate(req *chatzyv1.UpdateProfileRequest) (store.ProfileUpdate, error) {
	var upd store.ProfileUpdate
	for _, f := range req.GetFields() {
		switch f {
		case "name":
			upd.Name = &req.Name
		case "email":
			upd.Email = &req.Email
		case "avatar":
			upd.Avatar = &req.Avatar
		case "bio":
			upd.Bio = &req.Bio
		default:
			return upd, fmt.Errorf("%w: unknown profile field %q", store.ErrInvalidInput, f)
		}
	}
	return upd, nil
}
