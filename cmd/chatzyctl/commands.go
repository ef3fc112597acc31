package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	chatzyv1 "github.com/matheus3301/chatzy/gen/chatzy/v1"
	"github.com/matheus3301/chatzy/internal/chat"
	"github.com/matheus3301/chatzy/internal/client"
	"github.com/matheus3301/chatzy/internal/store"
	"github.com/matheus3301/chatzy/internal/timefmt"
	"google.golang.org/protobuf/proto"
)

var errUsage = errors.New("wrong arguments; run chatzyctl without arguments for usage")

type command struct {
	c    *client.Client
	json bool
}

func (cmd *command) run(ctx context.Context, args []string) error {
	name, rest := args[0], args[1:]
	switch name {
	case "status":
		return cmd.status(ctx)
	case "register":
		if len(rest) != 3 {
			return errUsage
		}
		resp, err := cmd.c.Session.Register(ctx, &chatzyv1.RegisterRequest{Name: rest[0], Email: rest[1], Password: rest[2]})
		if err != nil {
			return err
		}
		return cmd.user(resp, resp.GetUser())
	case "login":
		if len(rest) != 1 {
			return errUsage
		}
		resp, err := cmd.c.Session.Login(ctx, &chatzyv1.LoginRequest{Email: rest[0]})
		if err != nil {
			return err
		}
		return cmd.user(resp, resp.GetUser())
	case "logout":
		if _, err := cmd.c.Session.Logout(ctx, &chatzyv1.LogoutRequest{}); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	case "whoami":
		resp, err := cmd.c.Session.WhoAmI(ctx, &chatzyv1.WhoAmIRequest{})
		if err != nil {
			return err
		}
		return cmd.user(resp, resp.GetUser())
	case "profile":
		return cmd.profile(ctx, rest)
	case "contacts":
		return cmd.contacts(ctx)
	case "open":
		if len(rest) != 1 {
			return errUsage
		}
		return cmd.open(ctx, rest[0])
	case "send":
		if len(rest) < 2 {
			return errUsage
		}
		return cmd.send(ctx, &chatzyv1.SendMessageRequest{To: rest[0], Type: string(store.KindText), Content: strings.Join(rest[1:], " ")})
	case "send-voice":
		if len(rest) != 2 {
			return errUsage
		}
		secs, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return fmt.Errorf("seconds: %w", err)
		}
		return cmd.send(ctx, &chatzyv1.SendMessageRequest{To: rest[0], Type: string(store.KindVoice), VoiceDuration: secs})
	case "send-file":
		if len(rest) != 3 {
			return errUsage
		}
		return cmd.sendFile(ctx, rest[0], rest[1], rest[2])
	case "calls":
		if len(rest) == 1 && rest[0] == "clear" {
			if _, err := cmd.c.Call.ClearCalls(ctx, &chatzyv1.ClearCallsRequest{}); err != nil {
				return err
			}
			fmt.Println("Call history cleared.")
			return nil
		}
		return cmd.calls(ctx)
	case "call":
		if len(rest) != 4 {
			return errUsage
		}
		return cmd.recordCall(ctx, rest)
	case "group":
		if len(rest) < 3 || rest[0] != "create" {
			return errUsage
		}
		return cmd.createGroup(ctx, rest[1], rest[2:])
	case "emoji":
		return cmd.emoji(ctx, rest)
	default:
		return fmt.Errorf("unknown command: %s", name)
	}
}

func (cmd *command) status(ctx context.Context) error {
	resp, err := cmd.c.Session.GetStatus(ctx, &chatzyv1.GetStatusRequest{})
	if err != nil {
		return err
	}
	if cmd.json {
		outputJSON(resp)
		return nil
	}
	fmt.Printf("Profile: %s\n", resp.GetProfile())
	fmt.Printf("Status:  %s\n", resp.GetState())
	fmt.Printf("Backend: %s\n", resp.GetBackend())
	fmt.Printf("Users:   %d\n", resp.GetUserCount())
	fmt.Printf("Uptime:  %s\n", time.Duration(resp.GetUptimeMs())*time.Millisecond)
	if u := resp.GetUser(); u != nil {
		fmt.Printf("User:    %s <%s>\n", u.GetName(), u.GetEmail())
	}
	return nil
}

// user prints u, or the whole response in JSON mode.
func (cmd *command) user(resp proto.Message, u *chatzyv1.User) error {
	if cmd.json {
		outputJSON(resp)
		return nil
	}
	fmt.Printf("%s <%s>\n", u.GetName(), u.GetEmail())
	fmt.Printf("ID:  %s\n", u.GetId())
	if u.GetBio() != "" {
		fmt.Printf("Bio: %s\n", u.GetBio())
	}
	return nil
}

func (cmd *command) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	req := &chatzyv1.UpdateProfileRequest{}
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Avatar, "avatar", "", "avatar URL")
	fs.StringVar(&req.Bio, "bio", "", "bio")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) { req.Fields = append(req.Fields, f.Name) })

	resp, err := cmd.c.Session.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	return cmd.user(resp, resp.GetUser())
}

func (cmd *command) contacts(ctx context.Context) error {
	resp, err := cmd.c.Chat.ListContacts(ctx, &chatzyv1.ListContactsRequest{})
	if err != nil {
		return err
	}
	if cmd.json {
		outputJSON(resp)
		return nil
	}
	if len(resp.GetContacts()) == 0 {
		fmt.Println("No contacts yet.")
		return nil
	}
	for _, c := range resp.GetContacts() {
		unread := ""
		if c.GetUnreadCount() > 0 {
			unread = fmt.Sprintf(" [%d]", c.GetUnreadCount())
		}
		fmt.Printf("%-38s %-20s %-18s %8s%s\n", c.GetId(), c.GetName(), c.GetStatus(), c.GetTimestamp(), unread)
		fmt.Printf("%-38s %s\n", "", c.GetLastMessage())
	}
	return nil
}

func (cmd *command) open(ctx context.Context, contactID string) error {
	conv, err := cmd.c.Message.GetConversation(ctx, &chatzyv1.GetConversationRequest{ContactId: contactID})
	if err != nil {
		return err
	}
	if _, err := cmd.c.Message.MarkRead(ctx, &chatzyv1.MarkReadRequest{ContactId: contactID}); err != nil {
		return err
	}
	if cmd.json {
		outputJSON(conv)
		return nil
	}
	now := time.Now()
	for _, m := range conv.GetMessages() {
		who := m.GetSenderName()
		if m.GetIsOwn() {
			who = "you"
		}
		at := time.UnixMilli(m.GetTimestampUnixMs())
		fmt.Printf("%-10s %-12s %s\n", timefmt.Message(at, now), who, describe(m))
	}
	return nil
}

func describe(m *chatzyv1.Message) string {
	switch store.Kind(m.GetType()) {
	case store.KindText:
		return m.GetContent()
	case store.KindVoice:
		return "🎤 " + timefmt.Duration(int(m.GetVoiceDuration()))
	case store.KindDocument:
		return fmt.Sprintf("📎 %s (%s)", m.GetFileName(), m.GetFileSize())
	default:
		return strings.TrimSpace(fmt.Sprintf("📎 %s %s %s", m.GetType(), m.GetFileName(), m.GetContent()))
	}
}

func (cmd *command) send(ctx context.Context, req *chatzyv1.SendMessageRequest) error {
	resp, err := cmd.c.Message.SendMessage(ctx, req)
	if err != nil {
		return err
	}
	if cmd.json {
		outputJSON(resp)
		return nil
	}
	fmt.Printf("Sent %s (%s)\n", resp.GetMessage().GetId(), resp.GetMessage().GetType())
	return nil
}

func (cmd *command) sendFile(ctx context.Context, to, kind, path string) error {
	k, err := store.ParseKind(kind)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	return cmd.send(ctx, &chatzyv1.SendMessageRequest{
		To:       to,
		Type:     string(k),
		File:     "file://" + abs,
		FileName: info.Name(),
		FileSize: chat.FormatFileSize(info.Size()),
	})
}

func (cmd *command) calls(ctx context.Context) error {
	resp, err := cmd.c.Call.ListCalls(ctx, &chatzyv1.ListCallsRequest{})
	if err != nil {
		return err
	}
	if cmd.json {
		outputJSON(resp)
		return nil
	}
	if len(resp.GetCalls()) == 0 {
		fmt.Println("No calls yet.")
		return nil
	}
	now := time.Now()
	for _, r := range resp.GetCalls() {
		at := time.UnixMilli(r.GetTimestampUnixMs())
		fmt.Printf("%-10s %-20s %-9s %-10s %s\n",
			timefmt.Call(at, now), r.GetContactName(), r.GetType(), r.GetStatus(), timefmt.Duration(int(r.GetDuration())))
	}
	return nil
}

func (cmd *command) recordCall(ctx context.Context, args []string) error {
	secs, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("seconds: %w", err)
	}
	resp, err := cmd.c.Call.RecordCall(ctx, &chatzyv1.RecordCallRequest{
		ContactId: args[0],
		Type:      args[1],
		Status:    args[2],
		Duration:  int32(secs),
	})
	if err != nil {
		return err
	}
	if cmd.json {
		outputJSON(resp)
		return nil
	}
	fmt.Printf("Recorded %s call with %s\n", resp.GetCall().GetStatus(), resp.GetCall().GetContactName())
	return nil
}

func (cmd *command) createGroup(ctx context.Context, name string, members []string) error {
	resp, err := cmd.c.Chat.CreateGroup(ctx, &chatzyv1.CreateGroupRequest{Name: name, Members: members})
	if err != nil {
		return err
	}
	if cmd.json {
		outputJSON(resp)
		return nil
	}
	g := resp.GetGroup()
	fmt.Printf("Created %s (%s), %d members\n", g.GetName(), g.GetId(), len(g.GetMembers()))
	return nil
}

func (cmd *command) emoji(ctx context.Context, args []string) error {
	var emojis []string
	var resp proto.Message
	switch len(args) {
	case 0:
		r, err := cmd.c.Chat.ListRecentEmojis(ctx, &chatzyv1.ListRecentEmojisRequest{})
		if err != nil {
			return err
		}
		resp, emojis = r, r.GetEmojis()
	case 1:
		r, err := cmd.c.Chat.AddRecentEmoji(ctx, &chatzyv1.AddRecentEmojiRequest{Emoji: args[0]})
		if err != nil {
			return err
		}
		resp, emojis = r, r.GetEmojis()
	default:
		return errUsage
	}
	if cmd.json {
		outputJSON(resp)
		return nil
	}
	fmt.Println(strings.Join(emojis, " "))
	return nil
}
