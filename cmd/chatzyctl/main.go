package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/matheus3301/chatzy/internal/client"
	"github.com/matheus3301/chatzy/internal/config"
	"github.com/matheus3301/chatzy/internal/profile"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := config.LoadOrDefault(profile.ConfigPath())
	if err != nil {
		fail(err)
	}
	name := profile.Resolve(*profileFlag, cfg)
	if err := profile.ValidateName(name); err != nil {
		fail(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	c, err := client.New(profile.SocketPath(name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot connect to daemon for profile %q: %v\n", name, err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	// watch runs until interrupted; everything else is a single call.
	if args[0] == "watch" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		cmdWatch(ctx, c, args[1:], *jsonFlag)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := &command{c: c, json: *jsonFlag}
	if err := cmd.run(ctx, args); err != nil {
		fail(err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: chatzyctl [--profile <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                                   Show daemon and session status")
	fmt.Fprintln(os.Stderr, "  register <name> <email> <password>       Sign up and sign in")
	fmt.Fprintln(os.Stderr, "  login <email>                            Sign in")
	fmt.Fprintln(os.Stderr, "  logout                                   Sign out")
	fmt.Fprintln(os.Stderr, "  whoami                                   Show the signed-in user")
	fmt.Fprintln(os.Stderr, "  profile [--name] [--email] [--avatar] [--bio]")
	fmt.Fprintln(os.Stderr, "                                           Edit the signed-in user")
	fmt.Fprintln(os.Stderr, "  contacts                                 List contacts")
	fmt.Fprintln(os.Stderr, "  open <contactId>                         Show a conversation and mark it read")
	fmt.Fprintln(os.Stderr, "  send <contactId> <text>                  Send a text message")
	fmt.Fprintln(os.Stderr, "  send-voice <contactId> <seconds>         Send a voice message")
	fmt.Fprintln(os.Stderr, "  send-file <contactId> <kind> <path>      Send image|video|audio|document")
	fmt.Fprintln(os.Stderr, "  calls                                    Show call history")
	fmt.Fprintln(os.Stderr, "  calls clear                              Clear call history")
	fmt.Fprintln(os.Stderr, "  call <contactId> <incoming|outgoing> <status> <seconds>")
	fmt.Fprintln(os.Stderr, "                                           Record a finished call")
	fmt.Fprintln(os.Stderr, "  group create <name> <memberId>...        Create a group")
	fmt.Fprintln(os.Stderr, "  emoji [glyph]                            Show or add recent emojis")
	fmt.Fprintln(os.Stderr, "  watch [prefix]                           Stream daemon events")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func outputJSON(m proto.Message) {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
